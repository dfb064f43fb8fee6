package model

import "time"

// RunRow is the per-instrument record of one pass. Created during the pass,
// never mutated afterwards.
type RunRow struct {
	Name       string
	Code       string
	Price      float64
	RSI        float64
	Action     Action
	TakeProfit float64
	StopLoss   float64
	Exec       *ExecutionResult // nil if no order was routed
	Err        string           // non-empty marks an error row
}

// RunResult is the aggregate outcome of one pass over the universe.
type RunResult struct {
	ID             string
	StartedAt      time.Time
	Rows           []RunRow
	ExpectedProfit float64 // sum of (take-profit - price) over routed entries
}
