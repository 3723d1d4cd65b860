package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/figletctl/internal/infra/figfont"
	"github.com/aalvaropc/figletctl/internal/infra/logger"
	"github.com/aalvaropc/figletctl/internal/ui/preview"
)

func previewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "preview <message>",
		Short: "Browse the bundled fonts with the message rendered live",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")

			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := preview.Deps{
				Fonts:    figfont.NewProvider(),
				Renderer: figfont.NewRenderer(),
				Logger:   logger.L(),
			}
			return preview.Run(args[0], deps)
		},
	}
	return c
}
