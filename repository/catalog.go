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

// findOne loads a row by id and maps a missing row to notFound.
func findOne[T any](ctx context.Context, db *gorm.DB, id uuid.UUID, notFound error) (*T, error) {
	var out T
	if err := db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", notFound, id)
		}
		return nil, err
	}
	return &out, nil
}

type ServiceRepository struct{ db *gorm.DB }

func NewServiceRepository(db *gorm.DB) *ServiceRepository { return &ServiceRepository{db: db} }

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	return findOne[models.Service](ctx, r.db, id, services.ErrServiceNotFound)
}

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return findOne[models.Product](ctx, r.db, id, services.ErrProductNotFound)
}

type PartnershipRepository struct{ db *gorm.DB }

func NewPartnershipRepository(db *gorm.DB) *PartnershipRepository {
	return &PartnershipRepository{db: db}
}

func (r *PartnershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Partnership, error) {
	return findOne[models.Partnership](ctx, r.db, id, services.ErrPartnershipNotFound)
}

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return findOne[models.User](ctx, r.db, id, services.ErrUserNotFound)
}
