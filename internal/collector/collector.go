package collector

import (
	"time"

	"TradeSentinel/internal/model"
)

// Collector fetches a price series for one instrument.
type Collector struct {
	Fetcher  Fetcher
	Period   string
	Interval string
}

// NewCollector creates a Collector for the given bar period and interval.
func NewCollector(fetcher Fetcher, period, interval string) *Collector {
	return &Collector{Fetcher: fetcher, Period: period, Interval: interval}
}

// Collect fetches the price series for a symbol. An empty series means the
// instrument has no data and should be skipped.
func (c *Collector) Collect(symbol string) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchBars(symbol, c.Period, c.Interval)
	if err != nil {
		return nil, err
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ string, _, _ string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, 60), nil
}

// GenerateMockBars produces a gently drifting synthetic series around a base
// price.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().Add(-time.Duration(count-i) * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
