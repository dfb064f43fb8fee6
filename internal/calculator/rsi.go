package calculator

import (
	"errors"
	"math"
)

// RollingRSI computes a per-bar RSI using rolling-mean average gains and
// losses over the given period. Entries before the window has filled are NaN.
// When the average loss is zero the oscillator saturates at 100 if there were
// gains, and is NaN when both averages are zero (flat prices).
func RollingRSI(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	n := len(closes)
	out := make([]float64, n)

	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	for i := 0; i < n; i++ {
		// The first bar has no price change, so the window fills at index `period`.
		if i < period {
			out[i] = math.NaN()
			continue
		}
		var avgGain, avgLoss float64
		for j := i - period + 1; j <= i; j++ {
			avgGain += gains[j]
			avgLoss += losses[j]
		}
		avgGain /= float64(period)
		avgLoss /= float64(period)

		switch {
		case avgLoss == 0 && avgGain == 0:
			out[i] = math.NaN()
		case avgLoss == 0:
			out[i] = 100.0
		default:
			rs := avgGain / avgLoss
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return out, nil
}
