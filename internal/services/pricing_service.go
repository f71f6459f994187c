package services

import (
	"context"

	"neuraflow/internal/models"
	"neuraflow/pkg/logger"
)

func inr(amount float64) *float64 { return &amount }

// plans is the published catalog. Prices are monthly, in INR; Enterprise is
// quote-only.
var plans = []models.Plan{
	{
		Name:        "Starter",
		Description: "Single automation workflow for small teams",
		PriceINR:    inr(12000),
		Features: []string{
			"1 automation workflow",
			"AI chatbot (1 channel)",
			"Email support",
		},
	},
	{
		Name:        "Growth",
		Description: "Multi-channel automation for growing businesses",
		PriceINR:    inr(25000),
		Popular:     true,
		Features: []string{
			"3 automation workflows",
			"AI chatbot (web + WhatsApp)",
			"CRM integration",
			"Priority support",
		},
	},
	{
		Name:        "Scale",
		Description: "Full automation stack with custom workflows",
		PriceINR:    inr(55000),
		Features: []string{
			"Unlimited workflows",
			"AI receptionist",
			"Custom CRM modules",
			"Dedicated account manager",
		},
	},
	{
		Name:        "Enterprise",
		Description: "Custom solutions for large organizations",
		Features: []string{
			"Everything in Scale",
			"Custom app development",
			"SLA-backed support",
		},
	},
}

type PricingService interface {
	ListPlans(ctx context.Context, currency string) []*models.PricedPlan
}

type pricingService struct {
	currency CurrencyService
	logger   *logger.Logger
}

func NewPricingService(currency CurrencyService, log *logger.Logger) PricingService {
	return &pricingService{
		currency: currency,
		logger:   log,
	}
}

// ListPlans returns the catalog with each price rendered in the requested
// display currency. Quote-only plans render as "Custom".
func (s *pricingService) ListPlans(ctx context.Context, currency string) []*models.PricedPlan {
	priced := make([]*models.PricedPlan, 0, len(plans))
	for _, plan := range plans {
		p := &models.PricedPlan{
			Plan:     plan,
			Currency: currency,
		}

		if plan.PriceINR != nil {
			p.DisplayPrice = s.currency.FormatPrice(ctx, *plan.PriceINR, currency)
		} else {
			p.DisplayPrice = "Custom"
		}

		priced = append(priced, p)
	}

	return priced
}
