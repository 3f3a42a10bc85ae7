package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cents    int
		expected string
	}{
		{name: "zero", cents: 0, expected: "0.00"},
		{name: "below one", cents: 5, expected: "0.05"},
		{name: "whole", cents: 300, expected: "3.00"},
		{name: "fraction", cents: 250, expected: "2.50"},
		{name: "upper bound", cents: 100000, expected: "1000.00"},
		{name: "negative", cents: -199, expected: "-1.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatPrice(tt.cents))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "€2.50", FormatCurrency(250, "€"))
	assert.Equal(t, "-$0.10", FormatCurrency(-10, "$"))
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "two decimals", input: "2.50", expected: 250},
		{name: "one decimal", input: "2.5", expected: 250},
		{name: "integer", input: "12", expected: 1200},
		{name: "comma separator", input: " 1,99 ", expected: 199},
		{name: "trailing zeros", input: "1.500", expected: 150},
		{name: "too precise", input: "1.999", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cents, err := ParsePrice(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestParsePrice_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, cents := range []int{0, 1, 99, 100, 4321, 100000} {
		parsed, err := ParsePrice(FormatPrice(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, parsed)
	}
}
