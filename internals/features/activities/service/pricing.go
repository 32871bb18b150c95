package service

import "youthcentre_backend/internals/features/activities/model"

// NormalizePricing enforces has_price=false ⇒ price=nil. Safe to apply repeatedly.
func NormalizePricing(m *model.ActivityModel) {
	if !m.HasPrice {
		m.Price = nil
	}
}
