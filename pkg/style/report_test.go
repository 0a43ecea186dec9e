package style_test

import (
	"testing"

	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	resolved := style.NewStyleComponents(style.Grid, style.Numbers)
	report := style.NewReport([]string{"grid,numbers"}, false, resolved)

	assert.Equal(t, []string{"grid,numbers"}, report.Requested)
	assert.False(t, report.Interactive)
	assert.False(t, report.Plain)

	enabled := map[string]bool{}
	for _, entry := range report.Components {
		enabled[entry.Name] = entry.Enabled
	}
	assert.True(t, enabled["grid"])
	assert.True(t, enabled["numbers"])
	assert.False(t, enabled["header"])
	assert.False(t, enabled["snip"])
	assert.NotContains(t, enabled, "full")
	assert.NotContains(t, enabled, "auto")
	assert.NotContains(t, enabled, "plain")
}

func TestNewReport_Plain(t *testing.T) {
	report := style.NewReport([]string{"plain"}, true, style.NewStyleComponents())
	assert.True(t, report.Plain)
	for _, entry := range report.Components {
		assert.False(t, entry.Enabled, entry.Name)
	}
}

func TestNewCatalog(t *testing.T) {
	catalog := style.NewCatalog()
	assert.Len(t, catalog.Entries, 8)

	byName := map[string]style.CatalogEntry{}
	for _, entry := range catalog.Entries {
		byName[entry.Name] = entry
	}

	auto := byName["auto"]
	assert.False(t, auto.Atomic)
	assert.Equal(t, []string{"changes", "grid", "header", "numbers", "snip"}, auto.Interactive)
	assert.Empty(t, auto.Piped)

	grid := byName["grid"]
	assert.True(t, grid.Atomic)
	assert.Equal(t, []string{"grid"}, grid.Interactive)
	assert.Equal(t, []string{"grid"}, grid.Piped)

	assert.Empty(t, byName["plain"].Interactive)
	assert.Equal(t, auto.Interactive, byName["full"].Piped)
}
