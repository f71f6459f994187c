package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neuraflow/internal/models"
	"neuraflow/internal/repositories/interfaces"
	"neuraflow/internal/utils"
	"neuraflow/internal/validators"
	"neuraflow/pkg/logger"
	"neuraflow/pkg/relay"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrAuthorizationRequired means the reviewer did not consent to public
	// display. Nothing is persisted in that case.
	ErrAuthorizationRequired = errors.New("display authorization required")

	// ErrPersistenceFailed wraps store failures during submission. The
	// client's draft stays intact and the request can be retried.
	ErrPersistenceFailed = errors.New("failed to persist review")
)

type ReviewService interface {
	SubmitReview(ctx context.Context, req *validators.ReviewSubmitRequest) (*models.Review, error)
	ListReviews(ctx context.Context, params *utils.ReviewListParams) ([]*models.PublicReview, int64, error)
	GetRatingSummary(ctx context.Context) (*models.RatingSummary, error)
	ApproveReview(ctx context.Context, id primitive.ObjectID) error
}

type reviewService struct {
	reviewRepo interfaces.ReviewRepository
	notifier   relay.Notifier
	logger     *logger.Logger
}

func NewReviewService(reviewRepo interfaces.ReviewRepository, notifier relay.Notifier, log *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		notifier:   notifier,
		logger:     log,
	}
}

// SubmitReview runs the submission pipeline: consent check, validation,
// insert (always unapproved), then a best-effort relay that never affects
// the outcome. Validation and consent are settled before any store access.
func (s *reviewService) SubmitReview(ctx context.Context, req *validators.ReviewSubmitRequest) (*models.Review, error) {
	if !req.Authorized {
		return nil, ErrAuthorizationRequired
	}

	if validationErrors := validators.ValidateReviewSubmit(req); len(validationErrors) > 0 {
		return nil, validationErrors
	}

	review := req.ToReview()
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.WithError(err).Error("Review insert failed")
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	s.logger.LogReviewSubmitted(review.ID.Hex(), review.Product, review.Rating)
	s.dispatchRelay(review)

	return review, nil
}

// dispatchRelay forwards the submission without awaiting the result. The
// goroutine owns its own deadline; relay failures reach the operator log
// only, never the submitting caller.
func (s *reviewService) dispatchRelay(review *models.Review) {
	payload := &relay.Payload{
		Name:    review.Name,
		Email:   review.Email,
		Rating:  review.Rating,
		Comment: review.Comment,
		Product: review.Product,
		Date:    review.CreatedAt.UTC().Format(time.RFC3339),
	}
	reviewID := review.ID.Hex()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), utils.RelayTimeout)
		defer cancel()

		err := s.notifier.Send(ctx, payload)
		s.logger.LogRelayAttempt(reviewID, err)
	}()
}

func (s *reviewService) ListReviews(ctx context.Context, params *utils.ReviewListParams) ([]*models.PublicReview, int64, error) {
	reviews, total, err := s.reviewRepo.ListApproved(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	// Zero results is a valid state, not an error; keep the slice non-nil
	// so the response renders an empty array.
	if reviews == nil {
		reviews = []*models.PublicReview{}
	}

	return reviews, total, nil
}

func (s *reviewService) GetRatingSummary(ctx context.Context) (*models.RatingSummary, error) {
	summary, err := s.reviewRepo.GetRatingSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating summary: %w", err)
	}

	return summary, nil
}

func (s *reviewService) ApproveReview(ctx context.Context, id primitive.ObjectID) error {
	if err := s.reviewRepo.SetApproved(ctx, id, true); err != nil {
		return fmt.Errorf("failed to approve review: %w", err)
	}

	s.logger.WithField("review_id", id.Hex()).Info("Review approved")
	return nil
}
