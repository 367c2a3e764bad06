package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Services").
		Preload("Products").
		Preload("Partnerships").
		Preload("Customer").
		Preload("Attendant")
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(appt).Error; err != nil {
			return err
		}
		return saveLines(tx, appt)
	})
}

// Save writes the whole document: the root row, the current line sets and the
// partnership association. Last write wins.
func (r *AppointmentRepository) Save(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveDocument(tx, appt)
	})
}

func (r *AppointmentRepository) SaveWithReferral(ctx context.Context, appt *models.Appointment, credit services.ReferralCredit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveDocument(tx, appt); err != nil {
			return err
		}
		return creditReferral(tx, credit)
	})
}

func saveDocument(tx *gorm.DB, appt *models.Appointment) error {
	if err := tx.Omit(clause.Associations).Save(appt).Error; err != nil {
		return err
	}
	if err := tx.Where("appointment_id = ?", appt.ID).Delete(&models.AppointmentService{}).Error; err != nil {
		return err
	}
	if err := tx.Where("appointment_id = ?", appt.ID).Delete(&models.AppointmentProduct{}).Error; err != nil {
		return err
	}
	return saveLines(tx, appt)
}

// creditReferral bumps both counters. The zero-count condition on the referred
// row makes a second concurrent finish a no-op for both customers.
func creditReferral(tx *gorm.DB, credit services.ReferralCredit) error {
	result := tx.Model(&models.Customer{}).
		Where("id = ? AND referral_code_count = 0", credit.ReferredID).
		Update("referral_code_count", gorm.Expr("referral_code_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}
	result = tx.Model(&models.Customer{}).
		Where("id = ?", credit.ReferrerID).
		Update("referral_code_count", gorm.Expr("referral_code_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", services.ErrCustomerNotFound, credit.ReferrerID)
	}
	return nil
}

func saveLines(tx *gorm.DB, appt *models.Appointment) error {
	for i := range appt.Services {
		appt.Services[i].AppointmentID = appt.ID
	}
	for i := range appt.Products {
		appt.Products[i].AppointmentID = appt.ID
	}
	if len(appt.Services) > 0 {
		if err := tx.Create(&appt.Services).Error; err != nil {
			return err
		}
	}
	if len(appt.Products) > 0 {
		if err := tx.Create(&appt.Products).Error; err != nil {
			return err
		}
	}
	return tx.Model(appt).Association("Partnerships").Replace(appt.Partnerships)
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.preloaded(ctx).First(&appt, "appointments.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", services.ErrAppointmentNotFound, id)
		}
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Lines and partnership links go with the row; customers and attendants are untouched.
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&models.Appointment{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", services.ErrAppointmentNotFound, id)
	}
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context, q services.AppointmentQuery) ([]models.Appointment, int64, error) {
	base := r.filtered(r.db.WithContext(ctx).Model(&models.Appointment{}), q)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appts []models.Appointment
	err := r.filtered(r.preloaded(ctx), q).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortColumn, Raw: true}, Desc: q.Descending}).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&appts).Error
	if err != nil {
		return nil, 0, err
	}
	return appts, total, nil
}

func (r *AppointmentRepository) filtered(db *gorm.DB, q services.AppointmentQuery) *gorm.DB {
	if q.From != nil {
		db = db.Where("appointments.created_at >= ?", *q.From)
	}
	if q.To != nil {
		db = db.Where("appointments.created_at < ?", *q.To)
	}
	if q.Status != "" {
		db = db.Where("appointments.status = ?", q.Status)
	}
	if q.PaymentMethod != "" {
		db = db.Where("appointments.payment_method = ?", q.PaymentMethod)
	}
	if q.AttendantID != nil {
		db = db.Where("appointments.attendant_id = ?", *q.AttendantID)
	}
	if q.CustomerName != "" {
		db = db.Joins("JOIN customers ON customers.id = appointments.customer_id").
			Where("customers.name ILIKE ?", "%"+q.CustomerName+"%")
	}
	return db
}

func (r *AppointmentRepository) ListFinished(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Attendant").
		Where("status = ? AND created_at >= ? AND created_at < ?", models.StatusFinished, from, to).
		Order("attendant_id, on_service_at").
		Find(&appts).Error
	return appts, err
}
