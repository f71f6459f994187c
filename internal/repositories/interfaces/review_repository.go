package interfaces

import (
	"context"
	"errors"

	"neuraflow/internal/models"
	"neuraflow/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrReviewNotFound is returned when an ID does not match any stored review.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository is the persistence contract for review records.
//
// Create always stores the record unapproved; public reads go through the
// reviews_public view, so unapproved rows and reviewer emails can never leak
// into listing results.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	ListApproved(ctx context.Context, params *utils.ReviewListParams) ([]*models.PublicReview, int64, error)
	SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) error
	GetRatingSummary(ctx context.Context) (*models.RatingSummary, error)
}
