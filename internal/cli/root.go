package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/figletctl/internal/domain"
	"github.com/aalvaropc/figletctl/internal/infra/figfont"
	"github.com/aalvaropc/figletctl/internal/infra/logger"
	"github.com/aalvaropc/figletctl/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "figletctl <message>",
		Short: "Render a message as large ASCII art in the standard figlet font",
		Long: `figletctl renders a text message as large stylized ASCII art using the
built-in "standard" figlet font and prints it to stdout.

The message must be printable ASCII; anything else is a rendering failure.
To render a word that collides with a subcommand name, separate it with --:

  figletctl -- fonts`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			uc := usecase.NewRenderMessage(figfont.NewProvider(), figfont.NewRenderer())

			fig, err := uc.Execute(args[0], "")
			if err != nil {
				logger.L().Error("render.failed", "err", err)
				return err
			}
			logger.L().Debug("render.done", "lines", fig.Height(), "width", fig.Width())

			return printFigure(cmd.OutOrStdout(), fig)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(fontsCmd())
	cmd.AddCommand(previewCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func printFigure(w io.Writer, fig domain.Figure) error {
	_, err := fmt.Fprintln(w, fig.String())
	return err
}
