package model

import "math"

// IndicatorSet holds per-bar derived values, aligned index-for-index with the
// source bars. Entries before a window has filled are NaN and must not be used
// for decisions.
type IndicatorSet struct {
	MA    []float64 // simple moving average
	Upper []float64 // MA + 2 * rolling stddev
	Lower []float64 // MA - 2 * rolling stddev
	RSI   []float64 // 0-100 momentum oscillator
}

// Last returns the most recent value of each indicator. All values are NaN
// when the set is empty.
func (s *IndicatorSet) Last() (ma, upper, lower, rsi float64) {
	n := len(s.MA)
	if n == 0 {
		nan := math.NaN()
		return nan, nan, nan, nan
	}
	return s.MA[n-1], s.Upper[n-1], s.Lower[n-1], s.RSI[n-1]
}
