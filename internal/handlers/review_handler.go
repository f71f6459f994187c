package handlers

import (
	"errors"
	"net/http"

	"neuraflow/internal/repositories/interfaces"
	"neuraflow/internal/services"
	"neuraflow/internal/utils"
	"neuraflow/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// SubmitReview accepts a review draft, validates it, and stores it pending
// approval. Field errors come back as a field→message map; a successful
// submission returns 201 with a pending-approval message.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var request validators.ReviewSubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), &request)
	if err != nil {
		var validationErrors validators.ValidationErrors
		switch {
		case errors.As(err, &validationErrors):
			utils.ValidationErrorResponse(c, validationErrors.Fields())
		case errors.Is(err, services.ErrAuthorizationRequired):
			utils.ErrorResponse(c, http.StatusBadRequest, "AUTHORIZATION_REQUIRED",
				"Please authorize us to display your review")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "SUBMISSION_FAILED",
				utils.ErrSubmissionFailed)
		}
		return
	}

	utils.CreatedResponse(c, "Your review is pending approval and will be visible soon.",
		review.PublicView())
}

// ListReviews serves the public listing: approved rows only, sorted and
// filtered per the query controls, six per page.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	params := utils.GetReviewListParams(c)

	reviews, total, err := h.reviewService.ListReviews(c.Request.Context(), params)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "REVIEW_LIST_FAILED",
			utils.ErrInternalServer)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(reviews),
	}

	response := map[string]interface{}{
		"reviews": reviews,
	}

	utils.SuccessResponseWithMeta(c, "Reviews retrieved successfully", response, meta)
}

func (h *ReviewHandler) GetRatingSummary(c *gin.Context) {
	summary, err := h.reviewService.GetRatingSummary(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "RATING_SUMMARY_FAILED",
			utils.ErrInternalServer)
		return
	}

	utils.SuccessResponse(c, "Rating summary retrieved successfully", summary)
}

// ApproveReview is the moderation interface: it flips the approved flag and
// nothing else. Routes using it sit behind the admin secret middleware.
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	reviewID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.ApproveReview(c.Request.Context(), reviewID); err != nil {
		if errors.Is(err, interfaces.ErrReviewNotFound) {
			utils.NotFoundResponse(c, "Review")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "APPROVAL_FAILED",
			utils.ErrInternalServer)
		return
	}

	utils.SuccessResponse(c, "Review approved", nil)
}
