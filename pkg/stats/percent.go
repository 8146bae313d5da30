// Package stats provides small display-ratio helpers shared by the
// pipeline summary and the CLI.
package stats

import "math"

// DefaultPrecision is the number of decimal digits Percent rounds to.
const DefaultPrecision = 2

// Percent returns 100*n/d rounded to DefaultPrecision decimal digits.
// A zero denominator yields 0, never a division error.
func Percent(n, d float64) float64 {
	return PercentPrecision(n, d, DefaultPrecision)
}

// PercentPrecision returns 100*n/d rounded to the given number of decimal
// digits, or 0 when d is zero.
func PercentPrecision(n, d float64, digits int) float64 {
	if d == 0 {
		return 0
	}
	scale := math.Pow(10, float64(digits))
	return math.Round(100*n/d*scale) / scale
}
