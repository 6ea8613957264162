package sqlbind

import (
	"math"
)

func containsSkip(values []Value) bool {
	for n := range values {
		if values[n].kind == KindSkip {
			return true
		}
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Bounds of float64 values convertible to int64 without overflow.
const (
	minIntFloat = -9223372036854775808.0
	maxIntFloat = 9223372036854775808.0
)

func floatToInt(f float64) (int64, bool) {
	if !isFinite(f) || f < minIntFloat || f >= maxIntFloat {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}
