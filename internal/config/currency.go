package config

import (
	"time"
)

type CurrencyConfig struct {
	RateAPIURL   string        `yaml:"rate_api_url"`
	FallbackRate float64       `yaml:"fallback_rate"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	BaseCurrency string        `yaml:"base_currency"`
}

func loadCurrencyConfig() *CurrencyConfig {
	return &CurrencyConfig{
		RateAPIURL:   getEnv("EXCHANGE_RATE_API_URL", "https://api.exchangerate-api.com/v4/latest/USD"),
		FallbackRate: getEnvAsFloat64("EXCHANGE_RATE_FALLBACK", 83.0),
		CacheTTL:     getEnvAsDuration("EXCHANGE_RATE_CACHE_TTL", 1*time.Hour),
		BaseCurrency: getEnv("BASE_CURRENCY", "INR"),
	}
}
