package exchange

import "context"

// RateProvider quotes the current INR-per-USD exchange rate.
type RateProvider interface {
	FetchRate(ctx context.Context) (float64, error)
}
