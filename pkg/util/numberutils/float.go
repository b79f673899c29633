package numberutils

import "math"

// Round2 rounds f half away from zero to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Average returns sum/count rounded to two decimals, or 0 when count is zero.
func Average(sum float64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return Round2(sum / float64(count))
}
