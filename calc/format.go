package calc

import (
	"math"
	"strconv"
)

// Magnitudes outside [minPlain, maxPlain) are shown in exponent form.
const (
	minPlain = 1e-6
	maxPlain = 1e21
)

// FormatValue renders v as the shortest decimal text that round-trips.
//
// Integral values carry no fractional part ("78", not "78.0").
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs == 0 || (abs >= minPlain && abs < maxPlain) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
