package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the raw price data for one instrument.
// Bars are ordered chronologically.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Closes extracts the close prices from the series.
func (p *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(p.Bars))
	for i, b := range p.Bars {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the most recent close price, or 0 if the series is empty.
func (p *PriceSeries) LastClose() float64 {
	if len(p.Bars) == 0 {
		return 0
	}
	return p.Bars[len(p.Bars)-1].Close
}
