package calculator

import "math"

// Mean returns the arithmetic mean of the values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleVariance returns the (n-1)-normalized variance of the values.
// Fewer than two values have no spread and yield 0.
func SampleVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values)-1)
}

// SampleStdDev returns the sample standard deviation of the values.
func SampleStdDev(values []float64) float64 {
	return math.Sqrt(SampleVariance(values))
}

// HighVolShare returns the percentage of values whose absolute value exceeds
// the given threshold.
func HighVolShare(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if math.Abs(v) > threshold {
			count++
		}
	}
	return float64(count) / float64(len(values)) * 100
}
