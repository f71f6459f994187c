package relay

import (
	"context"
	"errors"
)

// Payload is the JSON body forwarded to the automation endpoint for each new
// review submission. Email is an empty string when the reviewer gave none.
type Payload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"omitempty,max=255"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
	Product string `json:"product" validate:"required"`
	Date    string `json:"date"` // ISO-8601 submission time
}

var (
	// ErrInsecureEndpoint means the configured forward URL is not HTTPS.
	// This is an operator configuration error, never surfaced to end users.
	ErrInsecureEndpoint = errors.New("relay endpoint must use https")
)

// Notifier forwards review submissions to an external automation system.
// Callers treat delivery as best-effort: a failed Send is logged, never
// propagated into the submission result.
type Notifier interface {
	Send(ctx context.Context, payload *Payload) error
}
