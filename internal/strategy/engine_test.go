package strategy

import (
	"math"
	"math/rand"
	"testing"

	"TradeSentinel/internal/calculator"
	"TradeSentinel/internal/model"
)

func indicatorSet(ma, upper, lower, rsi float64) *model.IndicatorSet {
	return &model.IndicatorSet{
		MA:    []float64{ma},
		Upper: []float64{upper},
		Lower: []float64{lower},
		RSI:   []float64{rsi},
	}
}

func TestEvaluate_Enter(t *testing.T) {
	p := NewPolicy(DefaultThresholds())
	rec := p.Evaluate(95, indicatorSet(100, 104, 96, 25))
	if rec.Action != model.ActionEnter {
		t.Fatalf("expected ENTER, got %s", rec.Action)
	}
	if rec.Price != 95 {
		t.Errorf("expected reference price 95, got %v", rec.Price)
	}
	if rec.TakeProfit != 95*1.05 {
		t.Errorf("expected take-profit %v, got %v", 95*1.05, rec.TakeProfit)
	}
	if rec.StopLoss != 95*0.97 {
		t.Errorf("expected stop-loss %v, got %v", 95*0.97, rec.StopLoss)
	}
}

func TestEvaluate_Exit(t *testing.T) {
	p := NewPolicy(DefaultThresholds())
	rec := p.Evaluate(105, indicatorSet(100, 104, 96, 75))
	if rec.Action != model.ActionExit {
		t.Fatalf("expected EXIT, got %s", rec.Action)
	}
	if rec.TakeProfit != 0 || rec.StopLoss != 0 {
		t.Error("exit recommendation must not carry target prices")
	}
}

func TestEvaluate_Hold(t *testing.T) {
	p := NewPolicy(DefaultThresholds())
	tests := []struct {
		name  string
		close float64
		ind   *model.IndicatorSet
	}{
		{"mid-band", 100, indicatorSet(100, 104, 96, 50)},
		{"oversold but above band", 100, indicatorSet(100, 104, 96, 25)},
		{"below band but not oversold", 95, indicatorSet(100, 104, 96, 45)},
		{"nan rsi", 95, indicatorSet(100, 104, 96, math.NaN())},
		{"nan bands", 95, indicatorSet(math.NaN(), math.NaN(), math.NaN(), 25)},
		{"empty set", 95, &model.IndicatorSet{}},
		{"zero price", 0, indicatorSet(100, 104, 96, 25)},
	}
	for _, tt := range tests {
		rec := p.Evaluate(tt.close, tt.ind)
		if rec.Action != model.ActionHold {
			t.Errorf("%s: expected HOLD, got %s", tt.name, rec.Action)
		}
		if rec.TakeProfit != 0 || rec.StopLoss != 0 {
			t.Errorf("%s: hold must not carry target prices", tt.name)
		}
	}
}

// Enter and Exit require the close on opposite sides of the band, so no single
// bar may satisfy both. Checked over random synthetic walks through the real
// indicator pipeline.
func TestEvaluate_MutualExclusion(t *testing.T) {
	p := NewPolicy(DefaultThresholds())
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		closes := make([]float64, 40)
		price := 100.0
		for i := range closes {
			price *= 1 + (rng.Float64()-0.5)*0.04
			closes[i] = price
		}
		bars := make([]model.OHLCV, len(closes))
		for i, c := range closes {
			bars[i] = model.OHLCV{Close: c}
		}
		set, err := calculator.Compute(bars, calculator.DefaultConfig())
		if err != nil {
			t.Fatalf("trial %d: compute: %v", trial, err)
		}

		close := closes[len(closes)-1]
		_, upper, lower, rsi := set.Last()
		if math.IsNaN(rsi) {
			continue
		}
		enter := rsi < 30 && close < lower
		exit := rsi > 70 && close > upper
		if enter && exit {
			t.Fatalf("trial %d: enter and exit both satisfied (rsi=%.2f close=%.2f)", trial, rsi, close)
		}
		rec := p.Evaluate(close, set)
		if enter && rec.Action != model.ActionEnter {
			t.Errorf("trial %d: expected ENTER, got %s", trial, rec.Action)
		}
		if exit && rec.Action != model.ActionExit {
			t.Errorf("trial %d: expected EXIT, got %s", trial, rec.Action)
		}
	}
}
