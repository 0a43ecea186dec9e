// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/arthur-debert/gutter/pkg/ui/styles"
)

const (
	markOn  = "●"
	markOff = "○"
)

// Renderer provides rich terminal output using the semantic style registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
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
	header := styles.GetStyle("Header")
	label := styles.GetStyle("Label")
	muted := styles.GetStyle("Muted")

	context := "piped"
	if report.Interactive {
		context = "interactive terminal"
	}

	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf("Style: %s", strings.Join(report.Requested, " "))))
	b.WriteString("\n")
	b.WriteString(muted.Render("resolved for " + context))
	b.WriteString("\n\n")

	for _, entry := range report.Components {
		b.WriteString(label.Render(entry.Name))
		if entry.Enabled {
			b.WriteString(styles.GetStyle("Enabled").Render(markOn + " on"))
		} else {
			b.WriteString(styles.GetStyle("Disabled").Render(markOff + " off"))
		}
		b.WriteString("\n")
	}

	if report.Plain {
		b.WriteString("\n")
		b.WriteString(muted.Render("plain output: no decorations"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderCatalog(catalog *style.Catalog) error {
	keyword := styles.GetStyle("Keyword")
	expansion := styles.GetStyle("Expansion")
	muted := styles.GetStyle("Muted")

	var b strings.Builder
	b.WriteString(styles.GetStyle("Header").Render("Style keywords"))
	b.WriteString("\n")
	for _, entry := range catalog.Entries {
		b.WriteString(keyword.Render(entry.Name))
		switch {
		case entry.Atomic:
			b.WriteString(muted.Render("atomic"))
		case strings.Join(entry.Interactive, ",") == strings.Join(entry.Piped, ","):
			b.WriteString(expansion.Render(list(entry.Interactive)))
		default:
			b.WriteString(expansion.Render(fmt.Sprintf("terminal: %s  piped: %s",
				list(entry.Interactive), list(entry.Piped))))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func list(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
