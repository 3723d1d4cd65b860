package domain

import "strings"

// Figure is a rendered block of text: the per-character glyphs of a message
// composed into lines. It is produced once and printed; nothing mutates it.
type Figure struct {
	Lines []string
}

func NewFigure(lines []string) Figure {
	return Figure{Lines: lines}
}

// Height is the number of lines in the rendered block. Fonts trim all-blank
// rows below the baseline, so this may be less than the font's glyph height.
func (f Figure) Height() int {
	return len(f.Lines)
}

// Width is the width in runes of the widest line.
func (f Figure) Width() int {
	w := 0
	for _, line := range f.Lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w
}

func (f Figure) Empty() bool {
	return len(f.Lines) == 0
}

func (f Figure) String() string {
	return strings.Join(f.Lines, "\n")
}
