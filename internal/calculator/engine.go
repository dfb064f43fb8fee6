package calculator

import (
	"fmt"

	"TradeSentinel/internal/model"
)

// Config holds the indicator window settings.
type Config struct {
	MAWindow  int     // moving average / volatility band window
	BandWidth float64 // stddev multiplier for the bands
	RSIPeriod int     // oscillator lookback
}

// DefaultConfig returns the standard 20-bar band and 14-bar RSI settings.
func DefaultConfig() Config {
	return Config{MAWindow: 20, BandWidth: 2.0, RSIPeriod: 14}
}

// Compute derives the full indicator set from a price series. The output is
// aligned bar-for-bar with the input; entries before a window has filled are
// NaN. Fails fast when the series is shorter than the band window.
func Compute(bars []model.OHLCV, cfg Config) (*model.IndicatorSet, error) {
	if len(bars) < cfg.MAWindow {
		return nil, fmt.Errorf("need at least %d bars, got %d", cfg.MAWindow, len(bars))
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	ma, err := RollingMean(closes, cfg.MAWindow)
	if err != nil {
		return nil, fmt.Errorf("moving average: %w", err)
	}
	std, err := RollingStd(closes, cfg.MAWindow)
	if err != nil {
		return nil, fmt.Errorf("rolling stddev: %w", err)
	}
	rsi, err := RollingRSI(closes, cfg.RSIPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}

	upper := make([]float64, len(closes))
	lower := make([]float64, len(closes))
	for i := range closes {
		upper[i] = ma[i] + cfg.BandWidth*std[i]
		lower[i] = ma[i] - cfg.BandWidth*std[i]
	}

	return &model.IndicatorSet{MA: ma, Upper: upper, Lower: lower, RSI: rsi}, nil
}
