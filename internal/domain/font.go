package domain

// Font identifies a figlet font bundled with the rendering capability.
// Height is the glyph height in lines as declared by the font.
type Font struct {
	Name   string
	Height int
}
