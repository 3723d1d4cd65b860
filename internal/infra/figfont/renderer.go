package figfont

import (
	"github.com/common-nighthawk/go-figure"

	"github.com/aalvaropc/figletctl/internal/domain"
)

// Renderer renders messages through go-figure.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(font domain.Font, msg domain.Message) (domain.Figure, error) {
	if err := msg.Validate(); err != nil {
		return domain.Figure{}, &domain.RenderError{
			Op:   "figfont.render",
			Kind: domain.KindRender,
			Font: font.Name,
			Err:  err,
		}
	}

	// Validate has pinned the message to the figlet charset, so strict mode
	// cannot panic here.
	fig := figure.NewFigure(string(msg), font.Name, true)
	lines := fig.Slicify()
	if len(lines) == 0 {
		return domain.Figure{}, &domain.RenderError{
			Op:   "figfont.render",
			Kind: domain.KindRender,
			Font: font.Name,
			Err:  domain.ErrEmptyMessage,
		}
	}
	return domain.NewFigure(lines), nil
}
