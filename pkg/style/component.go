package style

import (
	"slices"

	"github.com/arthur-debert/gutter/pkg/errors"
)

// StyleComponent is a single keyword of the style vocabulary
type StyleComponent int

const (
	// Auto expands to Full on an interactive terminal and to Plain otherwise
	Auto StyleComponent = iota
	// Changes shows version control modification markers
	Changes
	// Grid draws separator lines around the content
	Grid
	// Header prints the file name above the content
	Header
	// Numbers shows the line number column
	Numbers
	// Snip marks elided ranges of long content
	Snip
	// Full enables every atomic component
	Full
	// Plain disables every component
	Plain
)

// allComponents lists every keyword in declaration order
var allComponents = []StyleComponent{Auto, Changes, Grid, Header, Numbers, Snip, Full, Plain}

// fullComponents is the bundle Full expands to. The order is part of the
// contract even though StyleComponents is unordered.
var fullComponents = []StyleComponent{Changes, Grid, Header, Numbers, Snip}

var literals = map[StyleComponent]string{
	Auto:    "auto",
	Changes: "changes",
	Grid:    "grid",
	Header:  "header",
	Numbers: "numbers",
	Snip:    "snip",
	Full:    "full",
	Plain:   "plain",
}

// String returns the literal that parses back to c
func (c StyleComponent) String() string {
	if s, ok := literals[c]; ok {
		return s
	}
	return "unknown"
}

// ParseStyleComponent parses a single case-sensitive style literal
func ParseStyleComponent(raw string) (StyleComponent, error) {
	switch raw {
	case "auto":
		return Auto, nil
	case "changes":
		return Changes, nil
	case "grid":
		return Grid, nil
	case "header":
		return Header, nil
	case "numbers":
		return Numbers, nil
	case "snip":
		return Snip, nil
	case "full":
		return Full, nil
	case "plain":
		return Plain, nil
	default:
		return Auto, errors.Newf(errors.ErrUnknownStyle, "Unknown style '%s'", raw).
			WithDetail("style", raw)
	}
}

// Components expands c into atomic components. interactiveTerminal only
// matters for Auto. The returned slice is owned by the caller.
func (c StyleComponent) Components(interactiveTerminal bool) []StyleComponent {
	switch c {
	case Auto:
		if interactiveTerminal {
			return Full.Components(interactiveTerminal)
		}
		return Plain.Components(interactiveTerminal)
	case Changes, Grid, Header, Numbers, Snip:
		return []StyleComponent{c}
	case Full:
		return slices.Clone(fullComponents)
	case Plain:
		return []StyleComponent{}
	default:
		return []StyleComponent{}
	}
}

// IsAtomic reports whether c expands to itself alone
func (c StyleComponent) IsAtomic() bool {
	switch c {
	case Changes, Grid, Header, Numbers, Snip:
		return true
	default:
		return false
	}
}

// AllComponents returns every keyword in declaration order
func AllComponents() []StyleComponent {
	return slices.Clone(allComponents)
}

// Literals returns every accepted literal in declaration order
func Literals() []string {
	out := make([]string, len(allComponents))
	for i, c := range allComponents {
		out[i] = c.String()
	}
	return out
}

// MarshalText implements encoding.TextMarshaler
func (c StyleComponent) MarshalText() ([]byte, error) {
	if _, ok := literals[c]; !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid style component %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *StyleComponent) UnmarshalText(text []byte) error {
	parsed, err := ParseStyleComponent(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
