// Package terminal answers the questions the style resolver needs about
// where output goes: is it an interactive terminal, and should colors be
// used.
package terminal

import (
	"os"
	"strings"

	"github.com/arthur-debert/gutter/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DecorationMode decides how the interactive flag handed to style
// expansion is computed
type DecorationMode int

const (
	// DecorationsAuto follows whether output is a terminal
	DecorationsAuto DecorationMode = iota
	// DecorationsAlways behaves as if output were a terminal
	DecorationsAlways
	// DecorationsNever behaves as if output were piped
	DecorationsNever
)

// String returns the string representation of the mode
func (m DecorationMode) String() string {
	switch m {
	case DecorationsAuto:
		return "auto"
	case DecorationsAlways:
		return "always"
	case DecorationsNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseDecorationMode parses a string into a DecorationMode value
func ParseDecorationMode(s string) (DecorationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return DecorationsAuto, nil
	case "always":
		return DecorationsAlways, nil
	case "never":
		return DecorationsNever, nil
	default:
		return DecorationsAuto, errors.Newf(errors.ErrInvalidInput, "unknown decorations mode: %s", s).
			WithDetail("decorations", s)
	}
}

// Interactive returns the flag style expansion should see for output f
func (m DecorationMode) Interactive(f *os.File) bool {
	switch m {
	case DecorationsAlways:
		return true
	case DecorationsNever:
		return false
	default:
		return IsInteractive(f)
	}
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether colored output should be written to f
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !IsInteractive(f) {
		return false
	}
	return termenv.NewOutput(f).Profile != termenv.Ascii
}
