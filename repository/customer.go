package repository

import (
	"context"
	"errors"
	"fmt"

	"barberpro-backend/models"
	"barberpro-backend/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", services.ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) FindByReferralCode(ctx context.Context, code string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "referral_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: referral code %s", services.ErrCustomerNotFound, code)
		}
		return nil, err
	}
	return &customer, nil
}
