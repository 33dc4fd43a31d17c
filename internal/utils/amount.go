package utils

import "math"

// ToMinorUnits converts a decimal currency amount to integer minor units,
// e.g. 250.00 -> 25000. Rounded to absorb float binary representation.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
