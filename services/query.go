package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var sortColumns = map[string]string{
	"createdAt":     "appointments.created_at",
	"updatedAt":     "appointments.updated_at",
	"finalPrice":    "appointments.final_price",
	"totalPrice":    "appointments.total_price",
	"status":        "appointments.status",
	"paymentMethod": "appointments.payment_method",
	"onServiceAt":   "appointments.on_service_at",
	"finishedAt":    "appointments.finished_at",
}

// AppointmentFilter is a list request. Dates are YYYY-MM-DD business days;
// OnlyToday takes precedence over StartDate/EndDate.
type AppointmentFilter struct {
	StartDate     string
	EndDate       string
	OnlyToday     bool
	Status        models.AppointmentStatus
	PaymentMethod models.PaymentMethod
	AttendantID   *uuid.UUID
	CustomerName  string
	SortBy        string
	Order         string
	Page          int
	Limit         int
}

type AppointmentPage struct {
	Results []models.Appointment `json:"results"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
}

func (s *AppointmentService) FindAll(ctx context.Context, f AppointmentFilter) (*AppointmentPage, error) {
	q, err := s.buildQuery(f)
	if err != nil {
		return nil, err
	}
	results, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.Appointment{}
	}
	return &AppointmentPage{
		Results: results,
		Total:   total,
		Page:    q.Offset/q.Limit + 1,
		Limit:   q.Limit,
	}, nil
}

func (s *AppointmentService) buildQuery(f AppointmentFilter) (AppointmentQuery, error) {
	var q AppointmentQuery

	if f.OnlyToday {
		from, to := utils.BusinessDay(s.now())
		q.From, q.To = &from, &to
	} else {
		from, to, err := dateBounds(f.StartDate, f.EndDate)
		if err != nil {
			return q, err
		}
		q.From, q.To = from, to
	}

	if f.Status != "" {
		if !f.Status.Valid() {
			return q, fmt.Errorf("%w: %s", ErrInvalidStatus, f.Status)
		}
		q.Status = f.Status
	}
	if f.PaymentMethod != "" {
		if !f.PaymentMethod.Valid() {
			return q, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, f.PaymentMethod)
		}
		q.PaymentMethod = f.PaymentMethod
	}
	q.AttendantID = f.AttendantID
	q.CustomerName = strings.TrimSpace(f.CustomerName)

	q.SortColumn = sortColumns["createdAt"]
	if col, ok := sortColumns[f.SortBy]; ok {
		q.SortColumn = col
	}
	q.Descending = !strings.EqualFold(f.Order, "asc")

	page, limit := f.Page, f.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	q.Offset = (page - 1) * limit
	q.Limit = limit
	return q, nil
}

// dateBounds turns inclusive business dates into half-open instants. Either
// bound may be empty.
func dateBounds(startDate, endDate string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if startDate != "" {
		t, err := utils.ParseBusinessDate(startDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		from = &t
	}
	if endDate != "" {
		t, err := utils.ParseBusinessDate(endDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, fmt.Errorf("%w: startDate after endDate", ErrInvalidDateRange)
	}
	return from, to, nil
}
