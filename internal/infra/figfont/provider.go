// Package figfont adapts the go-figure figlet library to the font ports.
//
// go-figure bundles its fonts and panics on an unknown name or an
// unsupported character, so the adapter validates both before calling it:
// fonts against a curated catalog, messages against the figlet charset.
package figfont

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/figletctl/internal/domain"
)

// StandardName is the figlet default font.
const StandardName = "standard"

// Bundled fonts exposed through the provider, with the glyph height each
// font declares in its header.
var catalog = map[string]int{
	"banner":   8,
	"big":      8,
	"doom":     8,
	"slant":    6,
	"small":    5,
	"smslant":  5,
	"standard": 6,
}

// Provider resolves fonts from the bundled catalog.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Standard() (domain.Font, error) {
	return p.Named(StandardName)
}

func (p *Provider) Named(name string) (domain.Font, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	height, ok := catalog[key]
	if !ok {
		return domain.Font{}, &domain.RenderError{
			Op:   "figfont.named",
			Kind: domain.KindFontLoad,
			Font: name,
			Err:  fmt.Errorf("%w: %q", domain.ErrFontNotFound, name),
		}
	}
	return domain.Font{Name: key, Height: height}, nil
}

func (p *Provider) List() []domain.Font {
	fonts := make([]domain.Font, 0, len(catalog))
	for name, height := range catalog {
		fonts = append(fonts, domain.Font{Name: name, Height: height})
	}
	sort.Slice(fonts, func(i, j int) bool { return fonts[i].Name < fonts[j].Name })
	return fonts
}
