package handlers

import (
	"neuraflow/internal/services"
	"neuraflow/internal/utils"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingService services.PricingService
}

func NewPricingHandler(pricingService services.PricingService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// ListPlans returns the pricing catalog with prices rendered in the
// requested display currency (default INR).
func (h *PricingHandler) ListPlans(c *gin.Context) {
	currency := c.DefaultQuery("currency", utils.DefaultCurrency)
	if !utils.ValidateCurrencyCode(currency) {
		currency = utils.DefaultCurrency
	}

	plans := h.pricingService.ListPlans(c.Request.Context(), currency)

	utils.SuccessResponse(c, "Pricing plans retrieved", map[string]interface{}{
		"currency": currency,
		"plans":    plans,
	})
}
