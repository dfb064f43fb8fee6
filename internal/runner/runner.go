package runner

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"TradeSentinel/internal/broker"
	"TradeSentinel/internal/calculator"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/strategy"
	"TradeSentinel/internal/universe"

	"github.com/google/uuid"
)

// Runner executes one full pass over the instrument universe: fetch bars,
// compute indicators, evaluate the policy, and route non-Hold recommendations.
type Runner struct {
	Universe  universe.Provider
	Collector *collector.Collector
	Calc      calculator.Config
	Policy    *strategy.Policy
	Router    *broker.Router
	Limit     int                // max instruments per pass
	Alert     func(text string)  // optional best-effort signal notification
}

// Run performs one pass. A universe-provider failure is fatal to the pass;
// any fault while processing a single instrument is recorded as an error row
// and the pass continues with the next instrument.
func (r *Runner) Run() (*model.RunResult, error) {
	instruments, err := r.Universe.Instruments()
	if err != nil {
		return nil, fmt.Errorf("load universe: %w", err)
	}

	names := make([]string, 0, len(instruments))
	for name := range instruments {
		names = append(names, name)
	}
	sort.Strings(names)
	if r.Limit > 0 && len(names) > r.Limit {
		names = names[:r.Limit]
	}

	run := &model.RunResult{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}

	for _, name := range names {
		code := instruments[name]
		row, skip := r.processInstrument(name, code)
		if skip {
			log.Printf("[INFO] %s (%s): no data, skipped", name, code)
			continue
		}
		if row.Err != "" {
			log.Printf("[WARN] %s (%s): %s", name, code, row.Err)
		} else if row.Action != model.ActionHold {
			log.Printf("[INFO] %s (%s): %s at %.2f", name, code, row.Action, row.Price)
			if r.Alert != nil {
				r.Alert(fmt.Sprintf("📢 %s - %s\nprice: %.2f", name, row.Action, row.Price))
			}
		}
		if row.Action == model.ActionEnter && row.Exec != nil {
			run.ExpectedProfit += row.TakeProfit - row.Price
		}
		run.Rows = append(run.Rows, row)
	}

	return run, nil
}

// processInstrument evaluates a single instrument. skip is true when the
// instrument has no data for the period. Panics are contained here so one
// instrument can never abort the batch.
func (r *Runner) processInstrument(name, code string) (row model.RunRow, skip bool) {
	row = model.RunRow{Name: name, Code: code}
	defer func() {
		if rec := recover(); rec != nil {
			row.Err = fmt.Sprintf("panic: %v", rec)
			skip = false
		}
	}()

	series, err := r.Collector.Collect(code)
	if err != nil {
		row.Err = fmt.Sprintf("fetch: %v", err)
		return row, false
	}
	if len(series.Bars) == 0 {
		return row, true
	}

	close := series.LastClose()
	row.Price = close

	set, err := calculator.Compute(series.Bars, r.Calc)
	if err != nil {
		// Insufficient history is not an error: it resolves to Hold.
		row.Action = model.ActionHold
		row.RSI = math.NaN()
		return row, false
	}
	_, _, _, rsi := set.Last()
	row.RSI = rsi

	rec := r.Policy.Evaluate(close, set)
	row.Action = rec.Action
	row.TakeProfit = rec.TakeProfit
	row.StopLoss = rec.StopLoss

	if rec.Action != model.ActionHold && rec.Price > 0 {
		_, result := r.Router.Route(rec, code)
		row.Exec = &result
	}
	return row, false
}
