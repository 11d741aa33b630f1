package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoneyBR(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0,00"},
		{12.5, "12,50"},
		{1234.56, "1.234,56"},
		{1234567.89, "1.234.567,89"},
		{-9876.5, "-9.876,50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoneyBR(tt.value))
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(33.3333))
	assert.Equal(t, -12.6, RoundWithOneDecimalPlace(-12.56))
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))

	assert.Equal(t, 1333.33, RoundWithTwoDecimalPlace(1333.3333))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
