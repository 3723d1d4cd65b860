package preview

import (
	"log/slog"

	"github.com/aalvaropc/figletctl/internal/ports"
)

type Deps struct {
	Fonts    ports.FontProvider
	Renderer ports.Renderer

	Logger *slog.Logger
}
