package terminal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gutter/pkg/errors"
	"github.com/arthur-debert/gutter/pkg/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorationModeString(t *testing.T) {
	assert.Equal(t, "auto", terminal.DecorationsAuto.String())
	assert.Equal(t, "always", terminal.DecorationsAlways.String())
	assert.Equal(t, "never", terminal.DecorationsNever.String())
	assert.Equal(t, "unknown", terminal.DecorationMode(7).String())
}

func TestParseDecorationMode(t *testing.T) {
	tests := []struct {
		input    string
		expected terminal.DecorationMode
		wantErr  bool
	}{
		{"auto", terminal.DecorationsAuto, false},
		{"", terminal.DecorationsAuto, false},
		{"always", terminal.DecorationsAlways, false},
		{"NEVER", terminal.DecorationsNever, false},
		{"sometimes", terminal.DecorationsAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := terminal.ParseDecorationMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// regularFile returns a file that is never a terminal
func regularFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestInteractive(t *testing.T) {
	f := regularFile(t)

	assert.True(t, terminal.DecorationsAlways.Interactive(f))
	assert.False(t, terminal.DecorationsNever.Interactive(f))
	assert.False(t, terminal.DecorationsAuto.Interactive(f))
}

func TestIsInteractive(t *testing.T) {
	assert.False(t, terminal.IsInteractive(nil))
	assert.False(t, terminal.IsInteractive(regularFile(t)))
}

func TestColorEnabled(t *testing.T) {
	f := regularFile(t)
	assert.False(t, terminal.ColorEnabled(f))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, terminal.ColorEnabled(os.Stdout))
}
