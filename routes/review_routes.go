package routes

import (
	"neuraflow/internal/handlers"
	"neuraflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReviewRoutes wires the public review endpoints and the
// secret-gated moderation route.
func SetupReviewRoutes(r *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, adminSecret string) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("/", reviewHandler.SubmitReview)
		reviews.GET("/", reviewHandler.ListReviews)
		reviews.GET("/summary", reviewHandler.GetRatingSummary)
	}

	admin := r.Group("/admin/reviews")
	admin.Use(middleware.AdminSecretRequired(adminSecret))
	{
		admin.PUT("/:id/approve", reviewHandler.ApproveReview)
	}
}
