package services

import (
	"testing"

	"barberpro-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name    string
		pricing models.Pricing
		want    float64
	}{
		{name: "no promotion", pricing: models.Pricing{Value: 20}, want: 20},
		{name: "promotion enabled", pricing: models.Pricing{Value: 20, PromotionValue: ptr(10.0), PromotionEnabled: true}, want: 10},
		{name: "promotion disabled", pricing: models.Pricing{Value: 50, PromotionValue: ptr(20.0)}, want: 50},
		{name: "enabled without value", pricing: models.Pricing{Value: 50, PromotionEnabled: true}, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePrice(tt.pricing))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	fixed := func(v float64) models.Partnership {
		return models.Partnership{DiscountType: models.DiscountFixed, DiscountValue: v}
	}
	percent := func(v float64) models.Partnership {
		return models.Partnership{DiscountType: models.DiscountPercentage, DiscountValue: v}
	}

	tests := []struct {
		name         string
		services     []models.AppointmentService
		products     []models.AppointmentProduct
		partnerships []models.Partnership
		want         Totals
	}{
		{
			name:     "single service",
			services: []models.AppointmentService{{Price: 20, BasePrice: 20, Weight: 1}},
			want:     Totals{FinalServicesPrice: 20, TotalPrice: 20, TotalServiceWeight: 1, FinalPrice: 20},
		},
		{
			name: "promotion on one service only",
			services: []models.AppointmentService{
				{Price: 10, BasePrice: 20, Weight: 1},
				{Price: 50, BasePrice: 50, Weight: 2},
			},
			want: Totals{FinalServicesPrice: 60, TotalPrice: 70, TotalServiceWeight: 3, Discount: 10, FinalPrice: 60},
		},
		{
			name:     "products add to total but not weight",
			services: []models.AppointmentService{{Price: 30, BasePrice: 30, Weight: 1}},
			products: []models.AppointmentProduct{{Price: 8, BasePrice: 10}},
			want:     Totals{FinalServicesPrice: 30, FinalProductsPrice: 8, TotalPrice: 40, TotalServiceWeight: 1, Discount: 2, FinalPrice: 38},
		},
		{
			name:         "fixed and percentage",
			services:     []models.AppointmentService{{Price: 100, BasePrice: 100, Weight: 1}},
			partnerships: []models.Partnership{fixed(10), percent(10)},
			want:         Totals{FinalServicesPrice: 100, TotalPrice: 100, TotalServiceWeight: 1, Discount: 20, FinalPrice: 80},
		},
		{
			name:         "percentage listed before fixed",
			services:     []models.AppointmentService{{Price: 100, BasePrice: 100, Weight: 1}},
			partnerships: []models.Partnership{percent(10), fixed(10)},
			want:         Totals{FinalServicesPrice: 100, TotalPrice: 100, TotalServiceWeight: 1, Discount: 20, FinalPrice: 80},
		},
		{
			name:         "percentage taken from the undiscounted total",
			services:     []models.AppointmentService{{Price: 80, BasePrice: 100, Weight: 1}},
			partnerships: []models.Partnership{percent(50)},
			want:         Totals{FinalServicesPrice: 80, TotalPrice: 100, TotalServiceWeight: 1, Discount: 70, FinalPrice: 30},
		},
		{
			name: "empty",
			want: Totals{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.services, tt.products, tt.partnerships)
			assert.InDelta(t, tt.want.FinalServicesPrice, got.FinalServicesPrice, 1e-9)
			assert.InDelta(t, tt.want.FinalProductsPrice, got.FinalProductsPrice, 1e-9)
			assert.InDelta(t, tt.want.TotalPrice, got.TotalPrice, 1e-9)
			assert.InDelta(t, tt.want.Discount, got.Discount, 1e-9)
			assert.InDelta(t, tt.want.FinalPrice, got.FinalPrice, 1e-9)
			assert.Equal(t, tt.want.TotalServiceWeight, got.TotalServiceWeight)
			assert.InDelta(t, got.TotalPrice-got.Discount, got.FinalPrice, 1e-9)
		})
	}
}

func TestPaymentFee(t *testing.T) {
	settings := models.Settings{CreditCardFee: 2.5, DebitCardFee: 1.5}
	tests := []struct {
		method models.PaymentMethod
		want   float64
	}{
		{models.PaymentCash, 0},
		{models.PaymentPix, 0},
		{models.PaymentTransfer, 0},
		{"", 0},
		{models.PaymentDebitCard, 4.5},
		{models.PaymentCreditCard, 7.5},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.InDelta(t, tt.want, PaymentFee(tt.method, settings, 3), 1e-9)
		})
	}
}
