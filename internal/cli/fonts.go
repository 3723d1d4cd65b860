package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/figletctl/internal/infra/figfont"
	"github.com/aalvaropc/figletctl/internal/ports"
)

func fontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the bundled figlet fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFonts(cmd.OutOrStdout(), figfont.NewProvider())
		},
	}
}

func printFonts(w io.Writer, fonts ports.FontProvider) error {
	for _, f := range fonts.List() {
		marker := ""
		if f.Name == figfont.StandardName {
			marker = "  (default)"
		}
		if _, err := fmt.Fprintf(w, "%-10s %d lines%s\n", f.Name, f.Height, marker); err != nil {
			return err
		}
	}
	return nil
}
