package calculator

import (
	"math"
	"testing"
	"time"

	"TradeSentinel/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:  time.Now().Add(time.Duration(i) * time.Minute),
			Open:  c, High: c, Low: c, Close: c,
			Volume: 1000,
		}
	}
	return bars
}

func TestCompute_TooFewBars(t *testing.T) {
	bars := barsFromCloses([]float64{100, 101, 102})
	if _, err := Compute(bars, DefaultConfig()); err == nil {
		t.Fatal("expected error for series shorter than the band window")
	}
}

func TestCompute_UndefinedPrefix(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
	}
	set, err := Compute(barsFromCloses(closes), DefaultConfig())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(set.MA) != 30 {
		t.Fatalf("expected 30 aligned entries, got %d", len(set.MA))
	}
	for i := 0; i < 19; i++ {
		if !math.IsNaN(set.MA[i]) || !math.IsNaN(set.Upper[i]) || !math.IsNaN(set.Lower[i]) {
			t.Errorf("bar %d: band values should be NaN before the window fills", i)
		}
	}
	for i := 19; i < 30; i++ {
		if math.IsNaN(set.MA[i]) || math.IsNaN(set.Upper[i]) || math.IsNaN(set.Lower[i]) {
			t.Errorf("bar %d: band values should be defined", i)
		}
		if set.Upper[i] < set.MA[i] || set.Lower[i] > set.MA[i] {
			t.Errorf("bar %d: bands must bracket the moving average", i)
		}
	}
	for i := 0; i < 14; i++ {
		if !math.IsNaN(set.RSI[i]) {
			t.Errorf("bar %d: RSI should be NaN before the window fills", i)
		}
	}
}

func TestRollingMean_KnownValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out, err := RollingMean(values, 3)
	if err != nil {
		t.Fatalf("rolling mean: %v", err)
	}
	want := []float64{math.NaN(), math.NaN(), 2, 3, 4}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(out[i]) {
				t.Errorf("index %d: expected NaN, got %v", i, out[i])
			}
			continue
		}
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("index %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestRollingStd_ConstantSeries(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5, 5}
	out, err := RollingStd(values, 3)
	if err != nil {
		t.Fatalf("rolling std: %v", err)
	}
	for i := 2; i < len(out); i++ {
		if out[i] != 0 {
			t.Errorf("index %d: constant series should have zero stddev, got %v", i, out[i])
		}
	}
}

func TestRollingRSI_AllGains(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out, err := RollingRSI(closes, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	last := out[len(out)-1]
	if last != 100.0 {
		t.Errorf("strictly rising series should saturate RSI at 100, got %v", last)
	}
}

func TestRollingRSI_FlatSeries(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}
	out, err := RollingRSI(closes, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	last := out[len(out)-1]
	if !math.IsNaN(last) {
		t.Errorf("flat series has no gains or losses, RSI should be NaN, got %v", last)
	}
}

func TestRollingRSI_AllLosses(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	out, err := RollingRSI(closes, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	last := out[len(out)-1]
	if last != 0 {
		t.Errorf("strictly falling series should pin RSI at 0, got %v", last)
	}
}
