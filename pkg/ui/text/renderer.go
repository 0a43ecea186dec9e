// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/gutter/pkg/style"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *style.Report:
		return r.renderReport(v)
	case *style.Catalog:
		return r.renderCatalog(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderReport(report *style.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %s\n", "style", strings.Join(report.Requested, " "))
	fmt.Fprintf(&b, "%-12s %s\n", "interactive", yesNo(report.Interactive))
	b.WriteString("\n")
	for _, entry := range report.Components {
		fmt.Fprintf(&b, "%-12s %s\n", entry.Name, onOff(entry.Enabled))
	}
	fmt.Fprintf(&b, "\n%-12s %s\n", "plain", yesNo(report.Plain))
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderCatalog(catalog *style.Catalog) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-32s %s\n", "KEYWORD", "TERMINAL", "PIPED")
	for _, entry := range catalog.Entries {
		fmt.Fprintf(&b, "%-10s %-32s %s\n", entry.Name, list(entry.Interactive), list(entry.Piped))
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ",")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
