package kernel

import "math"

// RoundMoney rounds a monetary amount to two decimal places.
//
// The rounding mode is round-half-away-from-zero: 2.005 rounds to 2.01,
// -2.005 rounds to -2.01. All derived order totals go through this single
// function so the mode is applied consistently.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
