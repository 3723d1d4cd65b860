package ports

import "github.com/aalvaropc/figletctl/internal/domain"

// FontProvider resolves figlet fonts bundled with the rendering capability.
type FontProvider interface {
	// Standard returns the built-in "standard" font.
	Standard() (domain.Font, error)
	// Named resolves a bundled font by name.
	Named(name string) (domain.Font, error)
	// List returns all bundled fonts, sorted by name.
	List() []domain.Font
}
