package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	CoinGecko     CoinGeckoConfig     `yaml:"coingecko"`
	CurrencyCache CurrencyCacheConfig `yaml:"currency_cache"`
	Logger        LoggerConfig        `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env-default:"15s"`
}

type CoinGeckoConfig struct {
	BaseURL      string        `yaml:"base_url" env:"COINGECKO_BASE_URL" env-default:"https://api.coingecko.com/api/v3"`
	APIKeyHeader string        `yaml:"api_key_header" env-default:"x-cg-demo-api-key"`
	APIKey       string        `yaml:"api_key" env:"COINGECKO_API_KEY" env-required:"true"`
	Timeout      time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent    string        `yaml:"user_agent" env-default:"crypto-tracker-backend/1.0"`
}

type CurrencyCacheConfig struct {
	Enabled bool `yaml:"enabled" env-default:"true"`
	// RefreshCron — cron-выражение с секундами; по умолчанию каждые 12 часов.
	RefreshCron string `yaml:"refresh_cron" env-default:"0 0 */12 * * *"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"json"` // text|json
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Try to read from config file if specified
	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
