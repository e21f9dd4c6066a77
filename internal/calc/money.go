package calc

import "math"

// Round2 rounds a currency value to two decimals. Every derived field is
// rounded at the point it is written, matching the spreadsheet behavior the
// forms were built around. NaN and infinities collapse to zero so a bad
// input can never poison a derived field.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// Money coerces a raw currency input: negative, NaN or infinite values
// degrade to zero instead of erroring.
func Money(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Count coerces a raw quantity input to a non-negative integer.
func Count(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
