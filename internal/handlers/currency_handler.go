package handlers

import (
	"neuraflow/internal/services"
	"neuraflow/internal/utils"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	currencyService services.CurrencyService
}

func NewCurrencyHandler(currencyService services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
	}
}

// DetectCurrency infers a display currency from the client's timezone.
func (h *CurrencyHandler) DetectCurrency(c *gin.Context) {
	timezone := c.Query("timezone")
	currency := h.currencyService.DetectCurrency(timezone)

	utils.SuccessResponse(c, "Currency detected", map[string]interface{}{
		"currency": currency,
		"symbol":   utils.GetCurrencySymbol(currency),
	})
}

// GetExchangeRate returns the current (possibly cached) INR-per-USD rate.
func (h *CurrencyHandler) GetExchangeRate(c *gin.Context) {
	rate := h.currencyService.GetExchangeRate(c.Request.Context())

	utils.SuccessResponse(c, "Exchange rate retrieved", map[string]interface{}{
		"base":     "USD",
		"currency": "INR",
		"rate":     rate,
	})
}
