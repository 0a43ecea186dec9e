package style

import (
	"strings"

	"github.com/arthur-debert/gutter/pkg/logging"
)

// ParseStyleList parses a comma separated list such as "numbers,grid".
// Blank items are skipped; the first unknown item fails the whole list.
func ParseStyleList(raw string) ([]StyleComponent, error) {
	var out []StyleComponent
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		c, err := ParseStyleComponent(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Resolve expands every keyword and collects the results into one set
func Resolve(keywords []StyleComponent, interactiveTerminal bool) StyleComponents {
	var expanded []StyleComponent
	for _, k := range keywords {
		expanded = append(expanded, k.Components(interactiveTerminal)...)
	}
	return NewStyleComponents(expanded...)
}

// ResolveStrings parses raw style values and resolves them. Each value may
// itself be a comma separated list.
func ResolveStrings(raws []string, interactiveTerminal bool) (StyleComponents, error) {
	logger := logging.GetLogger("style")

	var keywords []StyleComponent
	for _, raw := range raws {
		parsed, err := ParseStyleList(raw)
		if err != nil {
			logger.Debug().Err(err).Str("raw", raw).Msg("Rejected style value")
			return StyleComponents{}, err
		}
		keywords = append(keywords, parsed...)
	}

	resolved := Resolve(keywords, interactiveTerminal)
	logger.Debug().
		Strs("requested", raws).
		Bool("interactive", interactiveTerminal).
		Stringer("resolved", componentList(resolved.Slice())).
		Msg("Resolved style components")
	return resolved, nil
}

// Options is the full style request a command line front end collects
type Options struct {
	// Styles are raw style values, each possibly comma separated
	Styles []string
	// Plain overrides everything else and disables all components
	Plain bool
	// Number selects line numbers only, unless Plain is set
	Number bool
	// Interactive tells whether output goes to an interactive terminal
	Interactive bool
}

// ResolveOptions applies flag precedence: Plain, then Number, then Styles.
// No styles at all means "auto".
func ResolveOptions(opts Options) (StyleComponents, error) {
	switch {
	case opts.Plain:
		return Resolve([]StyleComponent{Plain}, opts.Interactive), nil
	case opts.Number:
		return Resolve([]StyleComponent{Numbers}, opts.Interactive), nil
	}

	styles := opts.Styles
	if len(styles) == 0 {
		styles = []string{Auto.String()}
	}
	return ResolveStrings(styles, opts.Interactive)
}

type componentList []StyleComponent

func (l componentList) String() string {
	return strings.Join(names(l), ",")
}
