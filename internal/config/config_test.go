package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != "paper" {
		t.Errorf("default mode should be paper, got %q", cfg.Mode)
	}
	if cfg.Universe.Limit != 20 {
		t.Errorf("default universe limit should be 20, got %d", cfg.Universe.Limit)
	}
	if cfg.Strategy.TakeProfitMult != 1.05 || cfg.Strategy.StopLossMult != 0.97 {
		t.Errorf("unexpected default target multipliers: %+v", cfg.Strategy)
	}
	if cfg.Portfolio.InitialCapital != 1000000 || cfg.Portfolio.DailyProfitTarget != 50.0 {
		t.Errorf("unexpected default portfolio settings: %+v", cfg.Portfolio)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
mode: paper
universe:
  source: static
  symbols:
    삼성전자: "005930.KS"
portfolio:
  initial_capital: 5000000
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DAILY_PROFIT_TARGET", "25.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Universe.Source != "static" || cfg.Universe.Symbols["삼성전자"] != "005930.KS" {
		t.Errorf("yaml universe not applied: %+v", cfg.Universe)
	}
	if cfg.Portfolio.InitialCapital != 5000000 {
		t.Errorf("yaml capital not applied: %v", cfg.Portfolio.InitialCapital)
	}
	if cfg.Portfolio.DailyProfitTarget != 25.5 {
		t.Errorf("env target override not applied: %v", cfg.Portfolio.DailyProfitTarget)
	}
}

func TestValidate_LiveRequiresCredentials(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Mode = "live"
	cfg.KIS.AppKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("live mode without credentials must not validate")
	}
}

func TestValidate_BadMode(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Mode = "demo"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown mode must not validate")
	}
}
