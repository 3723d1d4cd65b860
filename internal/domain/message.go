package domain

import "fmt"

// Message is the free-text input to be rendered. It is accepted as-is from
// the command line and never mutated.
type Message string

// Validate checks that the message can be rendered with a figlet font.
// The figlet required charset is printable ASCII (32..126); anything outside
// it is a rendering failure, not something to substitute or skip.
func (m Message) Validate() error {
	if len(m) == 0 {
		return ErrEmptyMessage
	}
	for i, r := range string(m) {
		if r < 32 || r > 126 {
			return fmt.Errorf("%w: %q at byte %d", ErrUnsupportedRune, r, i)
		}
	}
	return nil
}
