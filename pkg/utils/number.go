package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundRatioAsPercent converte uma razão em percentual inteiro arredondado.
// Denominador zero resulta em zero, nunca em erro de divisão.
func RoundRatioAsPercent(numerator, denominator int64) int64 {
	if denominator <= 0 {
		return 0
	}

	return int64(math.Round(float64(numerator) / float64(denominator) * 100))
}
