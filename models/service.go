package models

import (
	"time"

	"github.com/google/uuid"
)

// Pricing is shared by every sellable catalog item.
type Pricing struct {
	Value            float64  `gorm:"type:decimal(10,2);not null" json:"value"`
	PromotionValue   *float64 `gorm:"type:decimal(10,2)" json:"promotionValue"`
	PromotionEnabled bool     `gorm:"default:false" json:"promotionEnabled"`
}

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Pricing     `gorm:"embedded"`
	Weight      int       `gorm:"default:1" json:"weight"`
	Duration    int       `json:"duration"` // in minutes
	Category    string    `gorm:"default:'General'" json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Pricing     `gorm:"embedded"`
	Stock       int       `gorm:"default:0" json:"stock"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
