package portfolio

import (
	"sync"
	"time"

	"TradeSentinel/internal/model"
)

// Tracker accumulates profit across passes and evaluates the daily target.
// It is the single writer of the Account state; foreground and background
// passes serialize through the mutex.
type Tracker struct {
	mu      sync.Mutex
	account model.Account
}

// NewTracker creates a Tracker with the given initial capital and daily
// profit target percentage.
func NewTracker(initialCapital, dailyProfitTarget float64) *Tracker {
	return &Tracker{
		account: model.Account{
			InitialCapital:    initialCapital,
			DailyProfitTarget: dailyProfitTarget,
			UpdatedAt:         time.Now(),
		},
	}
}

// Apply adds one pass's profit delta to the cumulative total and reports the
// resulting daily return and whether the target has been reached.
func (t *Tracker) Apply(delta float64) (dailyReturn float64, targetReached bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.account.TotalProfit += delta
	t.account.UpdatedAt = time.Now()
	dailyReturn = t.account.DailyReturn()
	return dailyReturn, dailyReturn >= t.account.DailyProfitTarget
}

// Snapshot returns a copy of the current account state.
func (t *Tracker) Snapshot() model.Account {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.account
}
