package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrUnsupportedRune = errors.New("unsupported character")
	ErrFontNotFound    = errors.New("font not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindFontLoad ErrorKind = "font_load"
	KindRender   ErrorKind = "render"
)

// RenderError wraps an underlying error with operation context and a kind.
type RenderError struct {
	Op   string
	Kind ErrorKind
	Font string // Optional: relevant font name
	Err  error
}

func (e *RenderError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Font != "" {
		base += fmt.Sprintf(" (font=%s)", e.Font)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var re *RenderError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}
