package services

import "barberpro-backend/models"

// ResolvePrice returns the effective sell price of a catalog item.
func ResolvePrice(p models.Pricing) float64 {
	if p.PromotionEnabled && p.PromotionValue != nil {
		return *p.PromotionValue
	}
	return p.Value
}
