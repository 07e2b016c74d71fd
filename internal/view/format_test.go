package view

import (
	"testing"

	"larek/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{in: 0, expected: "0"},
		{in: 750, expected: "750"},
		{in: 1450, expected: "1 450"},
		{in: 1000000, expected: "1 000 000"},
		{in: 99.6, expected: "100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.in))
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Priceless", FormatPrice(nil))
	assert.Equal(t, "2 500 synapses", FormatPrice(model.Price(2500)))
}
