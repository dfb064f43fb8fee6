package collector

import "TradeSentinel/internal/model"

// Fetcher defines the interface for fetching market data. An empty (but
// error-free) result means the instrument has no data for the requested
// period and should be skipped.
type Fetcher interface {
	FetchBars(symbol, period, interval string) ([]model.OHLCV, error)
	Name() string
}
