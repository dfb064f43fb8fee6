package strategy

import (
	"math"

	"TradeSentinel/internal/model"
)

// Thresholds holds the tunable parameters of the entry/exit rule.
type Thresholds struct {
	OversoldRSI    float64 // enter below this RSI
	OverboughtRSI  float64 // exit above this RSI
	TakeProfitMult float64 // take-profit = close * mult
	StopLossMult   float64 // stop-loss = close * mult
}

// DefaultThresholds returns the standard RSI 30/70 rule with 5% take-profit
// and 3% stop-loss.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OversoldRSI:    30,
		OverboughtRSI:  70,
		TakeProfitMult: 1.05,
		StopLossMult:   0.97,
	}
}

// Policy maps the latest indicator values to a trade recommendation.
type Policy struct {
	Thresholds Thresholds
}

// NewPolicy creates a Policy with the given thresholds.
func NewPolicy(t Thresholds) *Policy {
	return &Policy{Thresholds: t}
}

// Evaluate derives a recommendation from the most recent bar. The two entry
// conditions are mutually exclusive by construction: one requires the close
// below the lower band, the other above the upper band. Any undefined
// indicator value resolves to Hold.
func (p *Policy) Evaluate(close float64, ind *model.IndicatorSet) model.Recommendation {
	_, upper, lower, rsi := ind.Last()

	if math.IsNaN(rsi) || math.IsNaN(upper) || math.IsNaN(lower) || close == 0 {
		return model.Recommendation{Action: model.ActionHold}
	}

	switch {
	case rsi < p.Thresholds.OversoldRSI && close < lower:
		return model.Recommendation{
			Action:     model.ActionEnter,
			Price:      close,
			TakeProfit: close * p.Thresholds.TakeProfitMult,
			StopLoss:   close * p.Thresholds.StopLossMult,
		}
	case rsi > p.Thresholds.OverboughtRSI && close > upper:
		return model.Recommendation{Action: model.ActionExit, Price: close}
	}
	return model.Recommendation{Action: model.ActionHold}
}
