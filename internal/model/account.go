package model

import "time"

// Account is the process-wide profit ledger. Created once at startup and
// mutated only by the portfolio tracker; never reset automatically.
type Account struct {
	TotalProfit       float64
	InitialCapital    float64
	DailyProfitTarget float64 // percentage of initial capital
	UpdatedAt         time.Time
}

// DailyReturn is the cumulative profit as a percentage of initial capital.
func (a *Account) DailyReturn() float64 {
	if a.InitialCapital == 0 {
		return 0
	}
	return a.TotalProfit / a.InitialCapital * 100
}
