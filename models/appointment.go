package models

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusWaiting   AppointmentStatus = "WAITING"
	StatusOnService AppointmentStatus = "ON_SERVICE"
	StatusFinished  AppointmentStatus = "FINISHED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusOnService, StatusFinished, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentPix        PaymentMethod = "PIX"
	PaymentTransfer   PaymentMethod = "TRANSFER"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentTransfer, PaymentDebitCard, PaymentCreditCard:
		return true
	}
	return false
}

// IsCard reports whether the method is charged a per-weight card fee.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentDebitCard || m == PaymentCreditCard
}

type Appointment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"customerId"`
	Customer    *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	AttendantID *uuid.UUID `gorm:"type:uuid;index" json:"attendantId"`
	Attendant   *User      `gorm:"foreignKey:AttendantID" json:"attendant,omitempty"`

	Services     []AppointmentService `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"services"`
	Products     []AppointmentProduct `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"products"`
	Partnerships []Partnership        `gorm:"many2many:appointment_partnerships" json:"partnerships"`

	FinalServicesPrice float64 `gorm:"type:decimal(10,2);default:0.0" json:"finalServicesPrice"`
	FinalProductsPrice float64 `gorm:"type:decimal(10,2);default:0.0" json:"finalProductsPrice"`
	TotalPrice         float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalPrice"`
	TotalServiceWeight int     `gorm:"default:0" json:"totalServiceWeight"`
	Discount           float64 `gorm:"type:decimal(10,2);default:0.0" json:"discount"`
	FinalPrice         float64 `gorm:"type:decimal(10,2);default:0.0" json:"finalPrice"`

	PaymentMethod PaymentMethod `gorm:"type:varchar(20)" json:"paymentMethod,omitempty"`
	PaymentFee    float64       `gorm:"type:decimal(10,2);default:0.0" json:"paymentFee"`
	RedeemCoupon  string        `json:"redeemCoupon,omitempty"`

	Status      AppointmentStatus `gorm:"type:varchar(20);index;not null;default:'WAITING'" json:"status"`
	CreatedAt   time.Time         `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	OnServiceAt *time.Time        `json:"onServiceAt"`
	FinishedAt  *time.Time        `json:"finishedAt"`
}

// AppointmentService is a service line frozen at attach time. Price is the
// promotion-resolved value, BasePrice the catalog value without promotion.
type AppointmentService struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ServiceID     uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	BasePrice     float64   `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	Weight        int       `gorm:"default:0" json:"weight"`
}

type AppointmentProduct struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ProductID     uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	BasePrice     float64   `gorm:"type:decimal(10,2);not null" json:"basePrice"`
}

// PartnershipIDs returns the ids of the attached partnerships.
func (a *Appointment) PartnershipIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Partnerships))
	for _, p := range a.Partnerships {
		ids = append(ids, p.ID)
	}
	return ids
}
