package routes

import (
	"neuraflow/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupWebhookRoutes wires the public relay endpoint. No auth middleware:
// the handler enforces its own shared-secret contract so that an
// unconfigured secret keeps the route open, matching the relay contract.
func SetupWebhookRoutes(r *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/review", webhookHandler.ReviewWebhook)
	}
}
