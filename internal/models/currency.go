package models

import "time"

// ExchangeRate is a cached INR-per-USD quote. The cache entry is explicit
// state, not an ambient global: freshness is a pure predicate over the entry
// and the caller's clock.
type ExchangeRate struct {
	Rate      float64   `json:"rate"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fresh reports whether the quote is still within its freshness window.
func (e ExchangeRate) Fresh(now time.Time, ttl time.Duration) bool {
	if e.Rate <= 0 || e.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(e.FetchedAt) < ttl
}
