package ports

import "github.com/aalvaropc/figletctl/internal/domain"

// Renderer turns a message into its stylized figure using a given font.
// Rendering is a pure function of (font, message).
type Renderer interface {
	Render(font domain.Font, msg domain.Message) (domain.Figure, error)
}
