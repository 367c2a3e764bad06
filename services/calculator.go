package services

import "barberpro-backend/models"

// Totals is the monetary result for one set of appointment lines.
type Totals struct {
	FinalServicesPrice float64
	FinalProductsPrice float64
	TotalPrice         float64
	TotalServiceWeight int
	Discount           float64
	FinalPrice         float64
}

// ComputeTotals derives every appointment total from the line snapshots.
// Promotional savings are base minus resolved price per line, so lines
// without an active promotion contribute nothing.
//
// Partnership discounts are applied after promotions: all FIXED first, then
// all PERCENTAGE. Percentages are taken from TotalPrice, not from the amount
// left after fixed discounts.
func ComputeTotals(services []models.AppointmentService, products []models.AppointmentProduct, partnerships []models.Partnership) Totals {
	var t Totals
	for _, l := range services {
		t.FinalServicesPrice += l.Price
		t.TotalPrice += l.BasePrice
		t.TotalServiceWeight += l.Weight
		t.Discount += l.BasePrice - l.Price
	}
	for _, l := range products {
		t.FinalProductsPrice += l.Price
		t.TotalPrice += l.BasePrice
		t.Discount += l.BasePrice - l.Price
	}

	for _, p := range partnerships {
		if p.DiscountType == models.DiscountFixed {
			t.Discount += p.DiscountValue
		}
	}
	for _, p := range partnerships {
		if p.DiscountType == models.DiscountPercentage {
			t.Discount += t.TotalPrice * p.DiscountValue / 100
		}
	}

	t.FinalPrice = t.TotalPrice - t.Discount
	return t
}

// Apply copies the totals onto an appointment.
func (t Totals) Apply(a *models.Appointment) {
	a.FinalServicesPrice = t.FinalServicesPrice
	a.FinalProductsPrice = t.FinalProductsPrice
	a.TotalPrice = t.TotalPrice
	a.TotalServiceWeight = t.TotalServiceWeight
	a.Discount = t.Discount
	a.FinalPrice = t.FinalPrice
}

// PaymentFee is the card fee for an appointment: rate times service weight
// for card methods, zero otherwise.
func PaymentFee(method models.PaymentMethod, settings models.Settings, totalServiceWeight int) float64 {
	if !method.IsCard() {
		return 0
	}
	return settings.FeeRate(method) * float64(totalServiceWeight)
}
