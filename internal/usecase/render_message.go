package usecase

import (
	"github.com/aalvaropc/figletctl/internal/domain"
	"github.com/aalvaropc/figletctl/internal/ports"
)

// RenderMessage resolves a font and renders a message with it.
type RenderMessage struct {
	fonts    ports.FontProvider
	renderer ports.Renderer
}

func NewRenderMessage(fp ports.FontProvider, r ports.Renderer) *RenderMessage {
	return &RenderMessage{
		fonts:    fp,
		renderer: r,
	}
}

// Execute renders text with the named font, or with the standard font when
// fontName is empty.
func (uc *RenderMessage) Execute(text string, fontName string) (domain.Figure, error) {
	var (
		font domain.Font
		err  error
	)
	if fontName == "" {
		font, err = uc.fonts.Standard()
	} else {
		font, err = uc.fonts.Named(fontName)
	}
	if err != nil {
		return domain.Figure{}, err
	}

	return uc.renderer.Render(font, domain.Message(text))
}
