package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name  string    `gorm:"not null;index" json:"name"`
	Phone string    `gorm:"not null;uniqueIndex" json:"phone"`
	Email string    `json:"email"`
	Notes string    `json:"notes"`

	// ReferralCode is the customer's own code; ReferralCodeUsed the code of
	// whoever referred them.
	ReferralCode      string `gorm:"uniqueIndex;not null" json:"referralCode"`
	ReferralCodeUsed  string `gorm:"index" json:"referralCodeUsed,omitempty"`
	ReferralCodeCount int    `gorm:"default:0" json:"referralCodeCount"`

	Birthday *time.Time `json:"birthday"`
	IsActive bool       `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
