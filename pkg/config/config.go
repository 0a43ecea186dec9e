package config

import (
	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/arthur-debert/gutter/pkg/terminal"
	"github.com/arthur-debert/gutter/pkg/ui"
)

// Config is the effective gutter configuration
type Config struct {
	// Style holds raw style values; each may be a comma separated list
	Style []string `koanf:"style" toml:"style"`
	// Decorations is one of auto, always, never
	Decorations string `koanf:"decorations" toml:"decorations"`
	// Format is the report output format
	Format string `koanf:"format" toml:"format"`

	// Source is the user config file that was loaded, if any
	Source string `koanf:"-" toml:"-"`
}

// DecorationMode returns the parsed decorations setting
func (c *Config) DecorationMode() (terminal.DecorationMode, error) {
	return terminal.ParseDecorationMode(c.Decorations)
}

// OutputFormat returns the parsed format setting
func (c *Config) OutputFormat() (ui.Format, error) {
	return ui.ParseFormat(c.Format)
}

// StyleKeywords parses every configured style value
func (c *Config) StyleKeywords() ([]style.StyleComponent, error) {
	var out []style.StyleComponent
	for _, raw := range c.Style {
		parsed, err := style.ParseStyleList(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed...)
	}
	return out, nil
}
