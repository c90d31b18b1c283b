package money

import (
	"math"
	"strconv"
)

// Round2 rounds half away from zero to cents using the decimal representation,
// so 88.125 becomes 88.13 even though its binary value is slightly below.
func Round2(v float64) float64 {
	return RoundN(v, 2)
}

func Round1(v float64) float64 {
	return RoundN(v, 1)
}

func RoundN(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow(10, float64(places))
	// pre-round ke 10 digit untuk buang noise biner sebelum pembulatan utama
	scaled, err := strconv.ParseFloat(strconv.FormatFloat(v*pow, 'f', 10-places, 64), 64)
	if err != nil {
		scaled = v * pow
	}
	return math.Round(scaled) / pow
}

// Percent returns round2(amount * rate / 100).
func Percent(amount, rate float64) float64 {
	return Round2(amount * rate / 100)
}
