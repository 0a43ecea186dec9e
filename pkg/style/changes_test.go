//go:build !nogit

package style_test

import (
	"testing"

	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestChanges(t *testing.T) {
	assert.True(t, style.ChangesSupported)
	assert.True(t, style.NewStyleComponents(style.Changes).Changes())
	assert.False(t, style.NewStyleComponents(style.Grid).Changes())
}

func TestResolve_FullInteractive(t *testing.T) {
	set, err := style.ResolveStrings([]string{"full"}, true)
	assert.NoError(t, err)

	assert.True(t, set.Grid())
	assert.True(t, set.Header())
	assert.True(t, set.Numbers())
	assert.True(t, set.Snip())
	assert.True(t, set.Changes())
	assert.False(t, set.Plain())
}
