package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseCountOrZero coerces a stat count field to a non-negative integer.
// Absent, non-numeric, fractional and negative input all coerce to 0;
// the roster never rejects an operation over a bad count field. Accepts
// the scalar types a decoded JSON body or form value can produce.
func ParseCountOrZero(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return clampCount(n)
	case int64:
		return clampCount(int(n))
	case float64:
		// Conversion of an out-of-range float to int is not defined;
		// reject before converting
		if n != math.Trunc(n) || n < 0 || n >= float64(math.MaxInt) {
			return 0
		}
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return clampCount(i)
	default:
		return 0
	}
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
