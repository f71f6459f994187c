package routes

import (
	"neuraflow/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupCurrencyRoutes(r *gin.RouterGroup, currencyHandler *handlers.CurrencyHandler, pricingHandler *handlers.PricingHandler) {
	currency := r.Group("/currency")
	{
		currency.GET("/detect", currencyHandler.DetectCurrency)
		currency.GET("/rate", currencyHandler.GetExchangeRate)
	}

	pricing := r.Group("/pricing")
	{
		pricing.GET("/plans", pricingHandler.ListPlans)
	}
}
