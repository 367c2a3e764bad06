package models

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "FIXED"
	DiscountPercentage DiscountType = "PERCENTAGE"
)

// Partnership is an affiliation (parking, professional association, ...)
// granting an appointment-level discount.
type Partnership struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	DiscountType  DiscountType `gorm:"type:varchar(20);not null" json:"discountType"`
	DiscountValue float64      `gorm:"type:decimal(10,2);not null" json:"discountValue"`
	IsActive      bool         `gorm:"default:true" json:"isActive"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
