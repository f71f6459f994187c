package exchange

import "context"

// FixedProvider always quotes the same rate. Useful for tests and as a
// pinned-rate deployment mode.
type FixedProvider struct {
	Rate float64
}

func NewFixedProvider(rate float64) *FixedProvider {
	return &FixedProvider{Rate: rate}
}

func (p *FixedProvider) FetchRate(ctx context.Context) (float64, error) {
	return p.Rate, nil
}
