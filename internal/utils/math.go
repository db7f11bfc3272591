// internal/utils/math.go
package utils

import "cmp"

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs возвращает модуль целого
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
