package numberutils

import (
	"math"
	"strconv"
)

// ToIntWithDefault converts s to an int, returning defaultVal when s is not a valid integer.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// MaxInt returns the largest of nums.
func MaxInt(nums ...int) int {
	maxVal := math.MinInt
	for _, num := range nums {
		if num > maxVal {
			maxVal = num
		}
	}
	return maxVal
}

// MinInt returns the smallest of nums.
func MinInt(nums ...int) int {
	minVal := math.MaxInt
	for _, num := range nums {
		if num < minVal {
			minVal = num
		}
	}
	return minVal
}

// ClampInt bounds num to the inclusive range [low, high].
func ClampInt(num, low, high int) int {
	return MaxInt(low, MinInt(num, high))
}

// IsIntInRange reports whether num is within [min, max].
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}
