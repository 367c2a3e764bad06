package services

import (
	"context"
	"errors"
	"fmt"

	"barberpro-backend/models"

	"github.com/google/uuid"
)

// LineItemBuilder freezes catalog prices into appointment lines.
type LineItemBuilder struct {
	services ServiceCatalog
	products ProductCatalog
}

func NewLineItemBuilder(services ServiceCatalog, products ProductCatalog) *LineItemBuilder {
	return &LineItemBuilder{services: services, products: products}
}

// ServiceLines resolves every id or fails on the first one that does not exist.
func (b *LineItemBuilder) ServiceLines(ctx context.Context, ids []uuid.UUID) ([]models.AppointmentService, error) {
	if len(ids) == 0 {
		return nil, ErrMissingServices
	}
	lines := make([]models.AppointmentService, 0, len(ids))
	for _, id := range ids {
		svc, err := b.services.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
			}
			return nil, err
		}
		lines = append(lines, models.AppointmentService{
			ID:        uuid.New(),
			ServiceID: svc.ID,
			Price:     ResolvePrice(svc.Pricing),
			BasePrice: svc.Value,
			Weight:    svc.Weight,
		})
	}
	return lines, nil
}

func (b *LineItemBuilder) ProductLines(ctx context.Context, ids []uuid.UUID) ([]models.AppointmentProduct, error) {
	lines := make([]models.AppointmentProduct, 0, len(ids))
	for _, id := range ids {
		p, err := b.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
			}
			return nil, err
		}
		lines = append(lines, models.AppointmentProduct{
			ID:        uuid.New(),
			ProductID: p.ID,
			Price:     ResolvePrice(p.Pricing),
			BasePrice: p.Value,
		})
	}
	return lines, nil
}
