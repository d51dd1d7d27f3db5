package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRatioAsPercent(t *testing.T) {
	tests := []struct {
		name        string
		numerator   int64
		denominator int64
		expected    int64
	}{
		{name: "razão exata", numerator: 1000, denominator: 200, expected: 500},
		{name: "meio arredonda para cima", numerator: 125, denominator: 200, expected: 63},
		{name: "dízima trunca no inteiro mais próximo", numerator: 1000, denominator: 300, expected: 333},
		{name: "denominador zero", numerator: 500, denominator: 0, expected: 0},
		{name: "denominador negativo", numerator: 500, denominator: -10, expected: 0},
		{name: "numerador zero", numerator: 0, denominator: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundRatioAsPercent(tt.numerator, tt.denominator))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.346))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
