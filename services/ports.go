package services

import (
	"context"
	"time"

	"barberpro-backend/models"

	"github.com/google/uuid"
)

// Lookups return the matching *NotFound sentinel (possibly wrapped) when the id
// does not resolve.

type CustomerDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByReferralCode(ctx context.Context, code string) (*models.Customer, error)
}

type StaffDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type ServiceCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
}

type ProductCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type PartnershipDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Partnership, error)
}

type FeeSettings interface {
	Current(ctx context.Context) (models.Settings, error)
}

// AppointmentQuery is the storage-level form of a list request. Bounds are
// half-open: From <= createdAt < To.
type AppointmentQuery struct {
	From          *time.Time
	To            *time.Time
	Status        models.AppointmentStatus
	PaymentMethod models.PaymentMethod
	AttendantID   *uuid.UUID
	CustomerName  string
	SortColumn    string
	Descending    bool
	Offset        int
	Limit         int
}

type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	Save(ctx context.Context, appt *models.Appointment) error
	// SaveWithReferral is Save plus the referral credit, committed together.
	// A referred customer already credited is left as is, and so is the
	// referrer.
	SaveWithReferral(ctx context.Context, appt *models.Appointment, credit ReferralCredit) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, q AppointmentQuery) ([]models.Appointment, int64, error)
	// ListFinished returns FINISHED appointments created in [from, to), ordered
	// by attendant then onServiceAt, with the attendant preloaded.
	ListFinished(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
}

// AppointmentNotifier receives persisted appointments. Implementations log
// their own failures and bound the time spent delivering.
type AppointmentNotifier interface {
	AppointmentCreated(ctx context.Context, appt *models.Appointment)
	// AppointmentUpdated also gets the status the appointment had before the update.
	AppointmentUpdated(ctx context.Context, appt *models.Appointment, previous models.AppointmentStatus)
}
