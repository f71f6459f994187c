package utils

import "time"

// Application Constants
const (
	AppName    = "NeuraFlow"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "INR"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 6
	MaxPageSize     = 24
	MinPageSize     = 1

	// Review constraints
	MaxNameLength     = 100
	MaxLocationLength = 100
	MaxEmailLength    = 255
	MaxCommentLength  = 1000
	MinRating         = 1
	MaxRating         = 5

	// Currency
	FallbackExchangeRate = 83.0 // INR per USD when the rate service is unreachable
	ExchangeRateCacheTTL = 1 * time.Hour

	// Relay
	RelayTimeout = 10 * time.Second
)

// Sort modes for the public review listing
const (
	SortRecent  = "recent"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

// ServiceCatalog is the fixed list of products a review may reference.
var ServiceCatalog = []string{
	"AI Chatbots & Automation",
	"CRM Solutions",
	"AI Receptionist",
	"WhatsApp Business Automation",
	"Personalized Email Follow-Up System",
	"Custom Workflows",
}

// IsCatalogService reports whether product is one of the offered services.
func IsCatalogService(product string) bool {
	for _, s := range ServiceCatalog {
		if s == product {
			return true
		}
	}
	return false
}

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrNotFound           = "not found"
	ErrValidationFailed   = "validation failed"
	ErrSubmissionFailed   = "failed to submit review, please try again"
	ErrConfigurationError = "configuration error"
)

// Header names
const (
	HeaderWebhookSecret = "x-webhook-secret"
	HeaderAdminSecret   = "x-admin-secret"
	HeaderRequestID     = "X-Request-ID"
)

// Cache Keys
const (
	CacheExchangeRatePrefix = "fx_rate:"
)

// Collection names
const (
	CollectionReviews       = "reviews"
	CollectionReviewsPublic = "reviews_public"
)
