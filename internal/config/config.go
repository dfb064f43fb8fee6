package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Mode     string `yaml:"mode"` // "paper" or "live"
	Universe struct {
		Source  string            `yaml:"source"` // "krx" or "static"
		Limit   int               `yaml:"limit"`
		Symbols map[string]string `yaml:"symbols"`
	} `yaml:"universe"`
	KIS struct {
		BaseURL     string `yaml:"base_url"`
		AppKey      string `yaml:"app_key"`
		AppSecret   string `yaml:"app_secret"`
		AccountNo   string `yaml:"account_no"`
		ProductCode string `yaml:"product_code"`
	} `yaml:"kis"`
	Data struct {
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
	} `yaml:"data"`
	Indicators struct {
		MAWindow  int     `yaml:"ma_window"`
		BandWidth float64 `yaml:"band_width"`
		RSIPeriod int     `yaml:"rsi_period"`
	} `yaml:"indicators"`
	Strategy struct {
		OversoldRSI    float64 `yaml:"oversold_rsi"`
		OverboughtRSI  float64 `yaml:"overbought_rsi"`
		TakeProfitMult float64 `yaml:"take_profit_mult"`
		StopLossMult   float64 `yaml:"stop_loss_mult"`
	} `yaml:"strategy"`
	Order struct {
		Quantity int `yaml:"quantity"`
	} `yaml:"order"`
	Portfolio struct {
		InitialCapital    float64 `yaml:"initial_capital"`
		DailyProfitTarget float64 `yaml:"daily_profit_target"`
	} `yaml:"portfolio"`
	Schedule struct {
		PassCron string `yaml:"pass_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Report struct {
		CSVDir string `yaml:"csv_dir"`
	} `yaml:"report"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TRADE_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("KIS_APP_KEY"); v != "" {
		cfg.KIS.AppKey = v
	}
	if v := os.Getenv("KIS_APP_SECRET"); v != "" {
		cfg.KIS.AppSecret = v
	}
	if v := os.Getenv("KIS_ACCOUNT_NO"); v != "" {
		cfg.KIS.AccountNo = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_PASS"); v != "" {
		cfg.Schedule.PassCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("INITIAL_CAPITAL"); v != "" {
		var capital float64
		if _, err := fmt.Sscanf(v, "%f", &capital); err == nil {
			cfg.Portfolio.InitialCapital = capital
		}
	}
	if v := os.Getenv("DAILY_PROFIT_TARGET"); v != "" {
		var target float64
		if _, err := fmt.Sscanf(v, "%f", &target); err == nil {
			cfg.Portfolio.DailyProfitTarget = target
		}
	}

	// Defaults
	if cfg.Mode == "" {
		cfg.Mode = "paper"
	}
	if cfg.Universe.Source == "" {
		cfg.Universe.Source = "krx"
	}
	if cfg.Universe.Limit == 0 {
		cfg.Universe.Limit = 20
	}
	if cfg.KIS.BaseURL == "" {
		cfg.KIS.BaseURL = "https://openapi.koreainvestment.com:9443"
	}
	if cfg.KIS.ProductCode == "" {
		cfg.KIS.ProductCode = "01"
	}
	if cfg.Data.Period == "" {
		cfg.Data.Period = "1d"
	}
	if cfg.Data.Interval == "" {
		cfg.Data.Interval = "1m"
	}
	if cfg.Indicators.MAWindow == 0 {
		cfg.Indicators.MAWindow = 20
	}
	if cfg.Indicators.BandWidth == 0 {
		cfg.Indicators.BandWidth = 2.0
	}
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = 14
	}
	if cfg.Strategy.OversoldRSI == 0 {
		cfg.Strategy.OversoldRSI = 30
	}
	if cfg.Strategy.OverboughtRSI == 0 {
		cfg.Strategy.OverboughtRSI = 70
	}
	if cfg.Strategy.TakeProfitMult == 0 {
		cfg.Strategy.TakeProfitMult = 1.05
	}
	if cfg.Strategy.StopLossMult == 0 {
		cfg.Strategy.StopLossMult = 0.97
	}
	if cfg.Order.Quantity == 0 {
		cfg.Order.Quantity = 1
	}
	if cfg.Portfolio.InitialCapital == 0 {
		cfg.Portfolio.InitialCapital = 1000000
	}
	if cfg.Portfolio.DailyProfitTarget == 0 {
		cfg.Portfolio.DailyProfitTarget = 50.0
	}
	if cfg.Schedule.PassCron == "" {
		cfg.Schedule.PassCron = "0 * * * * *" // every minute
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tradesentinel.db"
	}
	if cfg.Report.CSVDir == "" {
		cfg.Report.CSVDir = "reports"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Mode != "paper" && c.Mode != "live" {
		return fmt.Errorf("mode must be \"paper\" or \"live\", got %q", c.Mode)
	}
	if c.Mode == "live" {
		if c.KIS.AppKey == "" || c.KIS.AppSecret == "" {
			return fmt.Errorf("kis.app_key and kis.app_secret are required in live mode")
		}
		if c.KIS.AccountNo == "" {
			return fmt.Errorf("kis.account_no is required in live mode")
		}
	}
	if c.Universe.Source != "krx" && c.Universe.Source != "static" {
		return fmt.Errorf("universe.source must be \"krx\" or \"static\", got %q", c.Universe.Source)
	}
	if c.Universe.Source == "static" && len(c.Universe.Symbols) == 0 {
		return fmt.Errorf("universe.symbols is required with a static universe")
	}
	if c.Universe.Limit < 0 {
		return fmt.Errorf("universe.limit must not be negative")
	}
	if c.Portfolio.InitialCapital <= 0 {
		return fmt.Errorf("portfolio.initial_capital must be positive")
	}
	if c.Indicators.MAWindow < 2 {
		return fmt.Errorf("indicators.ma_window must be at least 2")
	}
	if c.Indicators.RSIPeriod < 1 {
		return fmt.Errorf("indicators.rsi_period must be at least 1")
	}
	return nil
}
