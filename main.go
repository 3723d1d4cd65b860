package main

import "github.com/aalvaropc/figletctl/internal/cli"

func main() {
	cli.Execute()
}
