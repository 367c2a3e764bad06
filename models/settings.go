package models

import "time"

// Settings holds shop-wide fee rates. A single row is kept; the zero value
// applies when none was persisted.
type Settings struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	CreditCardFee float64   `gorm:"type:decimal(10,2);default:0.0" json:"creditCardFee"`
	DebitCardFee  float64   `gorm:"type:decimal(10,2);default:0.0" json:"debitCardFee"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FeeRate returns the per-weight rate charged for a payment method.
func (s Settings) FeeRate(m PaymentMethod) float64 {
	switch m {
	case PaymentCreditCard:
		return s.CreditCardFee
	case PaymentDebitCard:
		return s.DebitCardFee
	}
	return 0
}
