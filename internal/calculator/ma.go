package calculator

import (
	"errors"
	"math"
)

// RollingMean computes a trailing simple moving average over the given window.
// Entries before the window has filled are NaN.
func RollingMean(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(window)
	}
	return out, nil
}

// RollingStd computes a trailing sample standard deviation over the given
// window. Entries before the window has filled are NaN.
func RollingStd(values []float64, window int) ([]float64, error) {
	if window <= 1 {
		return nil, errors.New("window must be greater than 1")
	}
	out := make([]float64, len(values))
	for i := range values {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		start := i - window + 1
		mean := 0.0
		for _, v := range values[start : i+1] {
			mean += v
		}
		mean /= float64(window)
		variance := 0.0
		for _, v := range values[start : i+1] {
			d := v - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(window-1))
	}
	return out, nil
}
