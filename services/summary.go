package services

import (
	"context"
	"fmt"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/google/uuid"
)

type Summary struct {
	Count              int        `json:"count"`
	TotalServiceWeight int        `json:"totalServiceWeight"`
	Revenue            float64    `json:"revenue"`
	Discount           float64    `json:"discount"`
	NetRevenue         float64    `json:"netRevenue"`
	PaymentFees        float64    `json:"paymentFees"`
	FirstOnServiceAt   *time.Time `json:"firstOnServiceAt"`
	LastFinishedAt     *time.Time `json:"lastFinishedAt"`
	TotalMinutes       float64    `json:"totalMinutes"`
	MinutesPerWeight   float64    `json:"minutesPerWeight"`
}

type AttendantSummary struct {
	AttendantID   uuid.UUID `json:"attendantId"`
	AttendantName string    `json:"attendantName"`
	Summary
}

// Summarize folds an ordered run of finished appointments. Attended time only
// counts appointments that carry both timestamps.
func Summarize(appts []models.Appointment) Summary {
	var s Summary
	for i := range appts {
		a := &appts[i]
		s.Count++
		s.TotalServiceWeight += a.TotalServiceWeight
		s.Revenue += a.FinalServicesPrice + a.FinalProductsPrice
		s.Discount += a.Discount
		s.PaymentFees += a.PaymentFee

		if s.FirstOnServiceAt == nil && a.OnServiceAt != nil {
			t := *a.OnServiceAt
			s.FirstOnServiceAt = &t
		}
		if a.FinishedAt != nil {
			t := *a.FinishedAt
			s.LastFinishedAt = &t
		}
		if a.OnServiceAt != nil && a.FinishedAt != nil {
			s.TotalMinutes += a.FinishedAt.Sub(*a.OnServiceAt).Minutes()
		}
	}
	s.NetRevenue = s.Revenue - s.Discount
	if s.TotalServiceWeight > 0 {
		s.MinutesPerWeight = s.TotalMinutes / float64(s.TotalServiceWeight)
	}
	return s
}

// SummarizeByAttendant reports productivity per attendant for appointments
// created within the inclusive business-date range. Empty dates default to
// the current business day. Unassigned appointments are left out.
func (s *AppointmentService) SummarizeByAttendant(ctx context.Context, startDate, endDate string) ([]AttendantSummary, error) {
	from, to, err := dateBounds(startDate, endDate)
	if err != nil {
		return nil, err
	}
	todayStart, todayEnd := utils.BusinessDay(s.now())
	if from == nil {
		if to != nil {
			return nil, fmt.Errorf("%w: startDate is required with endDate", ErrInvalidDateRange)
		}
		from = &todayStart
	}
	if to == nil {
		to = &todayEnd
		if !from.Before(*to) {
			end := from.AddDate(0, 0, 1)
			to = &end
		}
	}

	appts, err := s.store.ListFinished(ctx, *from, *to)
	if err != nil {
		return nil, err
	}
	return groupByAttendant(appts), nil
}

func groupByAttendant(appts []models.Appointment) []AttendantSummary {
	var (
		out   []AttendantSummary
		order []uuid.UUID
		runs  = map[uuid.UUID][]models.Appointment{}
		names = map[uuid.UUID]string{}
	)
	for _, a := range appts {
		if a.AttendantID == nil {
			continue
		}
		id := *a.AttendantID
		if _, seen := runs[id]; !seen {
			order = append(order, id)
		}
		runs[id] = append(runs[id], a)
		if a.Attendant != nil {
			names[id] = a.Attendant.Name
		}
	}
	out = make([]AttendantSummary, 0, len(order))
	for _, id := range order {
		out = append(out, AttendantSummary{
			AttendantID:   id,
			AttendantName: names[id],
			Summary:       Summarize(runs[id]),
		})
	}
	return out
}
