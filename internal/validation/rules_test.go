package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ascii unchanged", input: "614106526000", expected: "614106526000"},
		{name: "full-width digits", input: "６１４１０６５２６０００", expected: "614106526000"},
		{name: "full-width hyphen and space", input: "６１４１－０６５２　６０００", expected: "6141-0652 6000"},
		{name: "surrounding whitespace trimmed", input: "  42\n", expected: "42"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Narrow(tt.input))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0"))
	assert.True(t, IsNumeric("614106526000"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric("-5"))
	assert.False(t, IsNumeric("６"))
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "digits", input: "0123", shouldErr: false},
		{name: "empty left to Required", input: "", shouldErr: false},
		{name: "letters", input: "12ab", shouldErr: true},
		{name: "separator", input: "6141-0652", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Numeric.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "needs to be numeric")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatMode(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		shouldErr bool
	}{
		{name: "empty is default", input: "", shouldErr: false},
		{name: "plain", input: "N", shouldErr: false},
		{name: "spaced", input: "S", shouldErr: false},
		{name: "hyphenated", input: "H", shouldErr: false},
		{name: "grouped", input: "G", shouldErr: false},
		{name: "unknown", input: "X", shouldErr: true},
		{name: "not a string", input: 3, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FormatMode.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRangeMode(t *testing.T) {
	assert.NoError(t, RangeMode.Validate("numerical"))
	assert.NoError(t, RangeMode.Validate("sequential"))
	assert.NoError(t, RangeMode.Validate(""))
	assert.Error(t, RangeMode.Validate("binary"))
	assert.Error(t, RangeMode.Validate(1))
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid string",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error returns nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "wraps validation error",
			err:      assert.AnError,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapValidationError(tt.err)
			if tt.expected {
				assert.Error(t, result)
				assert.Contains(t, result.Error(), "invalid input")
			} else {
				assert.NoError(t, result)
			}
		})
	}
}
