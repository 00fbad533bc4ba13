package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundTo(f, 2)
}

// RoundTo arredonda para a quantidade de casas decimais informada
func RoundTo(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}
