package services

import (
	"context"
	"sync"
	"time"

	"neuraflow/internal/config"
	"neuraflow/internal/models"
	"neuraflow/internal/utils"
	"neuraflow/pkg/exchange"
	"neuraflow/pkg/logger"
)

// Cache is the subset of cache operations the currency service needs.
// Satisfied by pkg/cache.RedisCache; nil disables the shared layer.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type CurrencyService interface {
	DetectCurrency(timezone string) string
	GetExchangeRate(ctx context.Context) float64
	FormatPrice(ctx context.Context, amountINR float64, currency string) string
}

type currencyService struct {
	provider exchange.RateProvider
	cache    Cache
	config   *config.CurrencyConfig
	logger   *logger.Logger

	mu      sync.RWMutex
	current models.ExchangeRate
}

func NewCurrencyService(provider exchange.RateProvider, cache Cache, cfg *config.CurrencyConfig, log *logger.Logger) CurrencyService {
	return &currencyService{
		provider: provider,
		cache:    cache,
		config:   cfg,
		logger:   log,
	}
}

// DetectCurrency infers a display currency from the client's IANA timezone.
// Indian timezones map to INR, everything else to USD. Persisting the
// choice is the client's concern.
func (s *currencyService) DetectCurrency(timezone string) string {
	switch timezone {
	case "Asia/Kolkata", "Asia/Calcutta":
		return "INR"
	default:
		return "USD"
	}
}

// GetExchangeRate returns the INR-per-USD rate, trying the in-process
// entry, then the shared Redis cache, then a fresh fetch. A failed fetch
// falls back to the configured constant and is not cached as fresh.
func (s *currencyService) GetExchangeRate(ctx context.Context) float64 {
	now := time.Now()

	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current.Fresh(now, s.config.CacheTTL) {
		return current.Rate
	}

	cacheKey := utils.CacheExchangeRatePrefix + "usd_inr"
	if s.cache != nil {
		var cached models.ExchangeRate
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && cached.Fresh(now, s.config.CacheTTL) {
			s.store(cached)
			return cached.Rate
		}
	}

	rate, err := s.provider.FetchRate(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Exchange rate fetch failed, using fallback rate")
		return s.config.FallbackRate
	}

	entry := models.ExchangeRate{Rate: rate, FetchedAt: now}
	s.store(entry)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, entry, s.config.CacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache exchange rate")
		}
	}

	return rate
}

func (s *currencyService) store(entry models.ExchangeRate) {
	s.mu.Lock()
	s.current = entry
	s.mu.Unlock()
}

// FormatPrice converts a base-currency (INR) amount into the display
// currency and renders it with zero fractional digits.
func (s *currencyService) FormatPrice(ctx context.Context, amountINR float64, currency string) string {
	if currency == "USD" {
		rate := s.GetExchangeRate(ctx)
		return utils.FormatCurrency(amountINR/rate, "USD")
	}

	return utils.FormatCurrency(amountINR, "INR")
}
