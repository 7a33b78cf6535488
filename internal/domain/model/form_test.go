package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContainsNumber tests the whole-number grammar for quantity fields.
func TestContainsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain integer", input: "20", expected: true},
		{name: "zero", input: "0", expected: true},
		{name: "negative integer", input: "-5", expected: true},
		{name: "empty string", input: "", expected: false},
		{name: "decimal", input: "2.5", expected: false},
		{name: "trailing dot", input: "2.", expected: false},
		{name: "letters", input: "abc", expected: false},
		{name: "mixed", input: "12a", expected: false},
		{name: "whitespace", input: " 12", expected: false},
		{name: "lone minus", input: "-", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsNumber(tt.input))
		})
	}
}

// TestIsNumber tests the decimal grammar for dimension fields.
func TestIsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain integer", input: "10", expected: true},
		{name: "decimal", input: "2.5", expected: true},
		{name: "leading dot", input: ".5", expected: true},
		{name: "trailing dot", input: "5.", expected: true},
		{name: "negative decimal", input: "-2.5", expected: true},
		{name: "empty string matches grammar", input: "", expected: true},
		{name: "lone dot matches grammar", input: ".", expected: true},
		{name: "lone minus matches grammar", input: "-", expected: true},
		{name: "letters", input: "abc", expected: false},
		{name: "two dots", input: "1.2.3", expected: false},
		{name: "exponent notation", input: "1e3", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNumber(tt.input))
		})
	}
}

// TestParseNumber tests parsing of grammar-conforming input.
func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{name: "integer", input: "20", expected: 20, ok: true},
		{name: "decimal", input: "2.5", expected: 2.5, ok: true},
		{name: "negative", input: "-3", expected: -3, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "lone dot in grammar but unparsable", input: ".", ok: false},
		{name: "lone minus in grammar but unparsable", input: "-", ok: false},
		{name: "letters", input: "abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, n)
			} else {
				assert.Zero(t, n)
			}
		})
	}
}

// TestSizeVolume tests volume computation and the undefined sentinel.
func TestSizeVolume(t *testing.T) {
	tests := []struct {
		name     string
		size     Size
		expected float64
	}{
		{
			name:     "all dimensions valid",
			size:     Size{Length: "10", Width: "10", Height: "10"},
			expected: 1000,
		},
		{
			name:     "decimal dimensions",
			size:     Size{Length: "2.5", Width: "4", Height: "10"},
			expected: 100,
		},
		{
			name:     "zero dimension is a real volume",
			size:     Size{Length: "0", Width: "10", Height: "10"},
			expected: 0,
		},
		{
			name:     "missing dimension",
			size:     Size{Length: "10", Width: "", Height: "10"},
			expected: UndefinedVolume,
		},
		{
			name:     "unparsable dimension",
			size:     Size{Length: "10", Width: "abc", Height: "10"},
			expected: UndefinedVolume,
		},
		{
			name:     "lone dot dimension",
			size:     Size{Length: "10", Width: ".", Height: "10"},
			expected: UndefinedVolume,
		},
		{
			name:     "empty size",
			size:     Size{},
			expected: UndefinedVolume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.size.Volume())
		})
	}
}

// TestFormErrors tests the error-set helpers.
func TestFormErrors(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		assert.True(t, FormErrors{}.Empty())
		assert.True(t, FormErrors{}.SealedOK())
	})

	t.Run("quantity error does not break sealed checks", func(t *testing.T) {
		errs := FormErrors{Raw: "Enter a valid number"}
		assert.False(t, errs.Empty())
		assert.True(t, errs.SealedOK())
	})

	t.Run("dimension error fails sealed checks", func(t *testing.T) {
		errs := FormErrors{Width: "Must contain a number"}
		assert.False(t, errs.SealedOK())
	})

	t.Run("volume error fails sealed checks", func(t *testing.T) {
		errs := FormErrors{Volume: "Volume must be greater than 550 cm3"}
		assert.False(t, errs.SealedOK())
	})

	t.Run("fields returns only non-empty slots", func(t *testing.T) {
		errs := FormErrors{Raw: "bad", Height: "missing"}
		fields := errs.Fields()
		assert.Equal(t, map[string]string{"raw": "bad", "height": "missing"}, fields)
	})
}

// TestEmptyFormValues tests the pristine state constructor.
func TestEmptyFormValues(t *testing.T) {
	values := EmptyFormValues(TermMonthly)
	assert.Equal(t, TermMonthly, values.Term)
	assert.Empty(t, values.Raw)
	assert.Empty(t, values.Slabbed)
	assert.False(t, values.HasSealed)
	assert.Equal(t, Size{}, values.Size)
}
