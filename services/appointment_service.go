package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberpro-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateAppointmentInput struct {
	CustomerID     uuid.UUID
	AttendantID    *uuid.UUID
	ServiceIDs     []uuid.UUID
	ProductIDs     []uuid.UUID
	PartnershipIDs []uuid.UUID
	PaymentMethod  models.PaymentMethod
	RedeemCoupon   string
	// CreatedAt backdates the appointment, used when seeding history.
	CreatedAt *time.Time
}

// UpdateAppointmentInput carries only the fields to change; nil means untouched.
type UpdateAppointmentInput struct {
	AttendantID    *uuid.UUID
	ServiceIDs     *[]uuid.UUID
	ProductIDs     *[]uuid.UUID
	PartnershipIDs *[]uuid.UUID
	PaymentMethod  *models.PaymentMethod
	RedeemCoupon   *string
	Status         *models.AppointmentStatus
}

func (in UpdateAppointmentInput) repricing() bool {
	return in.ServiceIDs != nil || in.ProductIDs != nil || in.PartnershipIDs != nil
}

type Dependencies struct {
	Store        AppointmentStore
	Customers    CustomerDirectory
	Staff        StaffDirectory
	Services     ServiceCatalog
	Products     ProductCatalog
	Partnerships PartnershipDirectory
	Fees         FeeSettings
	Notifier     AppointmentNotifier
	Logger       *zap.Logger
}

// AppointmentService drives the appointment lifecycle: intake, repricing,
// status changes and settlement.
type AppointmentService struct {
	store        AppointmentStore
	customers    CustomerDirectory
	staff        StaffDirectory
	partnerships PartnershipDirectory
	fees         FeeSettings
	notifier     AppointmentNotifier
	lines        *LineItemBuilder
	referrals    *ReferralTrigger
	logger       *zap.Logger
	now          func() time.Time
}

func NewAppointmentService(d Dependencies) *AppointmentService {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppointmentService{
		store:        d.Store,
		customers:    d.Customers,
		staff:        d.Staff,
		partnerships: d.Partnerships,
		fees:         d.Fees,
		notifier:     d.Notifier,
		lines:        NewLineItemBuilder(d.Services, d.Products),
		referrals:    NewReferralTrigger(d.Customers, logger),
		logger:       logger,
		now:          time.Now,
	}
}

func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	if len(in.ServiceIDs) == 0 {
		return nil, ErrMissingServices
	}
	if in.PaymentMethod != "" && !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, in.PaymentMethod)
	}

	customer, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if in.AttendantID != nil {
		if _, err := s.staff.FindByID(ctx, *in.AttendantID); err != nil {
			return nil, err
		}
	}

	serviceLines, err := s.lines.ServiceLines(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	productLines, err := s.lines.ProductLines(ctx, in.ProductIDs)
	if err != nil {
		return nil, err
	}
	partnerships, err := s.resolvePartnerships(ctx, in.PartnershipIDs)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		AttendantID:  in.AttendantID,
		Services:     serviceLines,
		Products:     productLines,
		Partnerships: partnerships,
		RedeemCoupon: in.RedeemCoupon,
		Status:       models.StatusWaiting,
		CreatedAt:    s.now(),
	}
	if in.CreatedAt != nil {
		appt.CreatedAt = *in.CreatedAt
	}
	ComputeTotals(serviceLines, productLines, partnerships).Apply(appt)

	if in.PaymentMethod != "" {
		appt.PaymentMethod = in.PaymentMethod
		if err := s.applyPaymentFee(ctx, appt); err != nil {
			return nil, err
		}
	}

	if err := s.store.Create(ctx, appt); err != nil {
		return nil, err
	}
	appt.Customer = customer

	s.logger.Info("appointment created",
		zap.String("appointment_id", appt.ID.String()),
		zap.String("customer_id", appt.CustomerID.String()),
		zap.Float64("final_price", appt.FinalPrice))
	s.notifier.AppointmentCreated(ctx, appt)
	return appt, nil
}

func (s *AppointmentService) Update(ctx context.Context, id uuid.UUID, in UpdateAppointmentInput) (*models.Appointment, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *in.Status)
	}
	if in.PaymentMethod != nil && *in.PaymentMethod != "" && !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, *in.PaymentMethod)
	}

	appt, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := appt.Status

	if in.AttendantID != nil {
		if _, err := s.staff.FindByID(ctx, *in.AttendantID); err != nil {
			return nil, err
		}
		appt.AttendantID = in.AttendantID
		appt.Attendant = nil
	}

	recomputeFee := false
	if in.repricing() {
		if err := s.reprice(ctx, appt, in); err != nil {
			return nil, err
		}
		recomputeFee = true
	}

	if in.PaymentMethod != nil {
		appt.PaymentMethod = *in.PaymentMethod
		recomputeFee = true
	}
	if in.RedeemCoupon != nil {
		appt.RedeemCoupon = *in.RedeemCoupon
	}

	finished := false
	if in.Status != nil {
		now := s.now()
		appt.Status = *in.Status
		switch appt.Status {
		case models.StatusOnService:
			appt.OnServiceAt = &now
		case models.StatusFinished:
			appt.FinishedAt = &now
			recomputeFee = true
			finished = true
		}
	}

	if recomputeFee {
		if err := s.applyPaymentFee(ctx, appt); err != nil {
			return nil, err
		}
	}
	var credit *ReferralCredit
	if finished {
		if credit, err = s.referrals.Eligible(ctx, appt.CustomerID); err != nil {
			return nil, err
		}
	}

	if credit != nil {
		err = s.store.SaveWithReferral(ctx, appt, *credit)
	} else {
		err = s.store.Save(ctx, appt)
	}
	if err != nil {
		return nil, err
	}
	if credit != nil {
		s.logger.Info("referral rewarded",
			zap.String("referred_id", credit.ReferredID.String()),
			zap.String("referrer_id", credit.ReferrerID.String()))
	}

	s.logger.Info("appointment updated",
		zap.String("appointment_id", appt.ID.String()),
		zap.String("status", string(appt.Status)))
	s.notifier.AppointmentUpdated(ctx, appt, previous)
	return appt, nil
}

// reprice re-snapshots the line sets carried by the update and keeps the
// stored snapshot for the others, then re-derives every total.
func (s *AppointmentService) reprice(ctx context.Context, appt *models.Appointment, in UpdateAppointmentInput) error {
	if in.ServiceIDs != nil {
		lines, err := s.lines.ServiceLines(ctx, *in.ServiceIDs)
		if err != nil {
			return err
		}
		appt.Services = lines
	}
	if in.ProductIDs != nil {
		lines, err := s.lines.ProductLines(ctx, *in.ProductIDs)
		if err != nil {
			return err
		}
		appt.Products = lines
	}
	if in.PartnershipIDs != nil {
		partnerships, err := s.resolvePartnerships(ctx, *in.PartnershipIDs)
		if err != nil {
			return err
		}
		appt.Partnerships = partnerships
	}
	ComputeTotals(appt.Services, appt.Products, appt.Partnerships).Apply(appt)
	return nil
}

func (s *AppointmentService) resolvePartnerships(ctx context.Context, ids []uuid.UUID) ([]models.Partnership, error) {
	out := make([]models.Partnership, 0, len(ids))
	for _, id := range ids {
		p, err := s.partnerships.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrPartnershipNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrPartnershipNotFound, id)
			}
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *AppointmentService) applyPaymentFee(ctx context.Context, appt *models.Appointment) error {
	if !appt.PaymentMethod.IsCard() {
		appt.PaymentFee = 0
		return nil
	}
	settings, err := s.fees.Current(ctx)
	if err != nil {
		return err
	}
	appt.PaymentFee = PaymentFee(appt.PaymentMethod, settings, appt.TotalServiceWeight)
	return nil
}

// FindOne loads an appointment with its customer. A customer reference that
// no longer resolves is reported as a missing appointment.
func (s *AppointmentService) FindOne(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appt, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, appt.CustomerID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
		}
		return nil, err
	}
	appt.Customer = customer
	return appt, nil
}

func (s *AppointmentService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("appointment removed", zap.String("appointment_id", id.String()))
	return nil
}
