package style_test

import (
	"testing"

	"github.com/arthur-debert/gutter/pkg/errors"
	"github.com/arthur-debert/gutter/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyleList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []style.StyleComponent
	}{
		{"single", "grid", []style.StyleComponent{style.Grid}},
		{"pair", "numbers,grid", []style.StyleComponent{style.Numbers, style.Grid}},
		{"spaces", " numbers , header ", []style.StyleComponent{style.Numbers, style.Header}},
		{"blank items", "snip,,", []style.StyleComponent{style.Snip}},
		{"empty", "", nil},
		{"bundle", "full", []style.StyleComponent{style.Full}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := style.ParseStyleList(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseStyleList_Unknown(t *testing.T) {
	_, err := style.ParseStyleList("numbers,bogus,grid")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
	assert.Contains(t, err.Error(), "bogus")
}

func TestResolve(t *testing.T) {
	set := style.Resolve([]style.StyleComponent{style.Numbers, style.Full, style.Numbers}, false)
	assert.Equal(t, 5, set.Len())

	set = style.Resolve([]style.StyleComponent{style.Auto, style.Grid}, false)
	assert.Equal(t, []style.StyleComponent{style.Grid}, set.Slice())

	set = style.Resolve(nil, true)
	assert.True(t, set.Plain())
}

func TestResolveStrings_AutoPiped(t *testing.T) {
	set, err := style.ResolveStrings([]string{"auto"}, false)
	require.NoError(t, err)

	assert.Equal(t, 0, set.Len())
	assert.True(t, set.Plain())
	assert.False(t, set.Grid())
	assert.False(t, set.Header())
	assert.False(t, set.Numbers())
	assert.False(t, set.Snip())
}

func TestResolveStrings_Bogus(t *testing.T) {
	_, err := style.ResolveStrings([]string{"bogus"}, true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
	assert.Contains(t, err.Error(), "bogus")
}

func TestResolveStrings_MixedValues(t *testing.T) {
	set, err := style.ResolveStrings([]string{"numbers,grid", "header"}, false)
	require.NoError(t, err)
	assert.Equal(t, []style.StyleComponent{style.Grid, style.Header, style.Numbers}, set.Slice())
}

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     style.Options
		expected []style.StyleComponent
	}{
		{
			name:     "defaults to auto interactive",
			opts:     style.Options{Interactive: true},
			expected: style.Full.Components(true),
		},
		{
			name:     "defaults to auto piped",
			opts:     style.Options{Interactive: false},
			expected: []style.StyleComponent{},
		},
		{
			name:     "plain wins over everything",
			opts:     style.Options{Styles: []string{"full"}, Plain: true, Number: true, Interactive: true},
			expected: []style.StyleComponent{},
		},
		{
			name:     "number wins over styles",
			opts:     style.Options{Styles: []string{"full"}, Number: true, Interactive: true},
			expected: []style.StyleComponent{style.Numbers},
		},
		{
			name:     "explicit styles",
			opts:     style.Options{Styles: []string{"grid,snip"}},
			expected: []style.StyleComponent{style.Grid, style.Snip},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := style.ResolveOptions(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, set.Slice())
		})
	}
}

func TestResolveOptions_PlainSkipsParsing(t *testing.T) {
	set, err := style.ResolveOptions(style.Options{Styles: []string{"bogus"}, Plain: true})
	require.NoError(t, err)
	assert.True(t, set.Plain())
}
