package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tickerreport/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (e.g. TICKERREPORT_LOG_LEVEL).
const EnvPrefix = "TICKERREPORT"

type Config struct {
	Binance BinanceConfig `mapstructure:"binance"`
	Log     LogConfig     `mapstructure:"log"`
	Report  ReportConfig  `mapstructure:"report"`
}

type BinanceConfig struct {
	REST RESTConfig `mapstructure:"rest"`
}

type RESTConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type ReportConfig struct {
	TopCount int `mapstructure:"top_count"`
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("binance.rest.timeout", 10*time.Second)
	v.SetDefault("report.top_count", report.DefaultTopCount)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_file", "")
	v.SetDefault("log.environment", "prod")
}

// Load loads application configuration using Viper.
// Defaults are overridden by an optional config.yaml, which is in turn
// overridden by environment variables (a .env file is honoured if present).
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if ex, err := os.Executable(); err == nil {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	// Support environment variables with dot notation (e.g., TICKERREPORT_LOG_LEVEL)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Binance.REST.Timeout <= 0 {
		return fmt.Errorf("binance.rest.timeout must be positive, got %s", c.Binance.REST.Timeout)
	}
	if c.Report.TopCount < 0 {
		return fmt.Errorf("report.top_count must not be negative, got %d", c.Report.TopCount)
	}
	return nil
}
