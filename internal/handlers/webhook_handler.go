package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"neuraflow/internal/config"
	"neuraflow/internal/utils"
	"neuraflow/internal/validators"
	"neuraflow/pkg/logger"
	"neuraflow/pkg/relay"

	"github.com/gin-gonic/gin"
)

// WebhookHandler is the public relay endpoint for review notifications.
// Error bodies stay generic: internal details and the configured forward
// target are only ever written to the operator log.
type WebhookHandler struct {
	config   *config.WebhookConfig
	notifier relay.Notifier
	logger   *logger.Logger
}

func NewWebhookHandler(cfg *config.WebhookConfig, notifier relay.Notifier, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		config:   cfg,
		notifier: notifier,
		logger:   log,
	}
}

// ReviewWebhook validates an inbound review payload and forwards it to the
// configured automation endpoint. With no endpoint configured the payload
// is logged and the call still succeeds.
func (h *WebhookHandler) ReviewWebhook(c *gin.Context) {
	if h.config.InboundSecret != "" {
		provided := c.GetHeader(utils.HeaderWebhookSecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.config.InboundSecret)) != 1 {
			utils.UnauthorizedResponse(c)
			return
		}
	}

	var payload relay.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	if validationErrors := validators.ValidateRelayPayload(&payload); len(validationErrors) > 0 {
		h.logger.WithField("errors", validationErrors.Error()).Debug("Rejected relay payload")
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	if err := h.notifier.Send(c.Request.Context(), &payload); err != nil {
		if errors.Is(err, relay.ErrInsecureEndpoint) {
			h.logger.Error("Relay forward target is not HTTPS")
			utils.ErrorResponse(c, http.StatusInternalServerError, "CONFIGURATION_ERROR",
				utils.ErrConfigurationError)
			return
		}

		h.logger.WithError(err).Error("Relay forward failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "WEBHOOK_FAILED",
			utils.ErrInternalServer)
		return
	}

	utils.SuccessResponse(c, "Webhook processed", nil)
}
