package models

// Plan is a pricing catalog entry. PriceINR is nil for quote-only plans.
type Plan struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceINR    *float64 `json:"price_inr,omitempty"`
	Features    []string `json:"features,omitempty"`
	Popular     bool     `json:"popular"`
}

// PricedPlan is a Plan with its price rendered in the requested display
// currency.
type PricedPlan struct {
	Plan
	Currency     string `json:"currency"`
	DisplayPrice string `json:"display_price"`
}
