// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/gutter/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_style_error",
			code:    errors.ErrUnknownStyle,
			message: "Unknown style 'bogus'",
			wantStr: "[UNKNOWN_STYLE] Unknown style 'bogus'",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownStyle, "Unknown style '%s'", "grids")
	assert.Equal(t, "Unknown style 'grids'", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrConfigLoad, "failed to load %s", "config.toml")
		assert.Equal(t, "failed to load config.toml", err.Message)
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownStyle, "unknown").
		WithDetail("style", "bogus").
		WithDetail("source", "flag")

	assert.Equal(t, "bogus", err.Details["style"])
	assert.Equal(t, "flag", err.Details["source"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownStyle, "error 1")
	err2 := errors.New(errors.ErrUnknownStyle, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with GutterError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrUnknownStyle, "unknown"),
			code:     errors.ErrUnknownStyle,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrUnknownStyle, "unknown"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "inner_code_through_wrap",
			err:      errors.Wrap(errors.New(errors.ErrUnknownStyle, "unknown"), errors.ErrConfigValid, "bad config"),
			code:     errors.ErrUnknownStyle,
			expected: true,
		},
		{
			name:     "through_fmt_wrap",
			err:      fmt.Errorf("context: %w", errors.New(errors.ErrConfigLoad, "load")),
			code:     errors.ErrConfigLoad,
			expected: true,
		},
		{
			name:     "non_gutter_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUnknownStyle,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknownStyle,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrTopicNotFound, errors.GetErrorCode(errors.New(errors.ErrTopicNotFound, "missing")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrUnknownStyle, "unknown").WithDetail("style", "bogus")
	assert.Equal(t, map[string]interface{}{"style": "bogus"}, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	styleErr := errors.Wrap(rootCause, errors.ErrUnknownStyle, "cannot parse style")
	configErr := errors.Wrap(styleErr, errors.ErrConfigValid, "invalid configuration")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigValid))

	var gutterErr *errors.GutterError
	require.True(t, stderrors.As(configErr.Unwrap(), &gutterErr))
	assert.Equal(t, errors.ErrUnknownStyle, gutterErr.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
