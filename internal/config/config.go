package config

import (
	"os"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type CatalogConfig struct {
	// Source is "static" or "rawg"
	Source     string `yaml:"source"`
	RawgAPIKey string `yaml:"rawg_api_key"`
	PageSize   int    `yaml:"page_size"`
}

type PricingConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	Listen  string        `yaml:"listen"`
	DataDir string        `yaml:"data_dir"`
	Catalog CatalogConfig `yaml:"catalog"`
	Pricing PricingConfig `yaml:"pricing"`
	Logger  LoggerConfig  `yaml:"logger"`
}

func defaults() *AppConfig {
	return &AppConfig{
		Listen:  ":8080",
		DataDir: "data",
		Catalog: CatalogConfig{Source: "static", PageSize: 40},
		Pricing: PricingConfig{IntervalSeconds: 30},
		Logger:  LoggerConfig{Mode: "development", Filename: "gamevault.log"},
	}
}

// Load reads the optional YAML config file and applies environment
// overrides on top of it.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("GAMEVAULT_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("GAMEVAULT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GAMEVAULT_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("RAWG_API_KEY"); v != "" {
		cfg.Catalog.RawgAPIKey = v
	}
	if v := os.Getenv("GAMEVAULT_CATALOG_PAGE_SIZE"); v != "" {
		cfg.Catalog.PageSize = cast.ToInt(v)
	}
	if v := os.Getenv("GAMEVAULT_PRICING_INTERVAL"); v != "" {
		cfg.Pricing.IntervalSeconds = cast.ToInt(v)
	}
	if v := os.Getenv("GAMEVAULT_LOG_MODE"); v != "" {
		cfg.Logger.Mode = v
	}
}

// PricingInterval converts the configured seconds into a duration.
func (c *AppConfig) PricingInterval() time.Duration {
	if c.Pricing.IntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Pricing.IntervalSeconds) * time.Second
}
