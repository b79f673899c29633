package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts s to an int, returning defaultVal when s is blank or not an integer.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// IsIntInRange reports whether num lies in [min, max].
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}

// ClampInt limits num to [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
