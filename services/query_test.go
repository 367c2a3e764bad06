package services

import (
	"context"
	"testing"
	"time"

	"barberpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentService_FindAll_OnlyToday(t *testing.T) {
	f := newFixture()
	// 23:00 on the 9th in the business zone, already the 10th in UTC.
	f.now = time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)

	page, err := f.svc.FindAll(context.Background(), AppointmentFilter{OnlyToday: true, StartDate: "garbage"})
	require.NoError(t, err)
	assert.NotNil(t, page.Results)

	q := f.store.lastQuery
	require.NotNil(t, q.From)
	require.NotNil(t, q.To)
	assert.True(t, q.From.Equal(time.Date(2025, 3, 9, 3, 0, 0, 0, time.UTC)), "from = %s", q.From)
	assert.True(t, q.To.Equal(time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)), "to = %s", q.To)
}

func TestAppointmentService_FindAll_Paging(t *testing.T) {
	tests := []struct {
		name       string
		filter     AppointmentFilter
		wantOffset int
		wantLimit  int
		wantPage   int
		wantSort   string
		wantDesc   bool
	}{
		{
			name:       "defaults",
			filter:     AppointmentFilter{},
			wantOffset: 0, wantLimit: 10, wantPage: 1,
			wantSort: "appointments.created_at", wantDesc: true,
		},
		{
			name:       "third page",
			filter:     AppointmentFilter{Page: 3, Limit: 20},
			wantOffset: 40, wantLimit: 20, wantPage: 3,
			wantSort: "appointments.created_at", wantDesc: true,
		},
		{
			name:       "limit capped",
			filter:     AppointmentFilter{Limit: 500},
			wantOffset: 0, wantLimit: 100, wantPage: 1,
			wantSort: "appointments.created_at", wantDesc: true,
		},
		{
			name:       "ascending by final price",
			filter:     AppointmentFilter{SortBy: "finalPrice", Order: "ASC"},
			wantOffset: 0, wantLimit: 10, wantPage: 1,
			wantSort: "appointments.final_price", wantDesc: false,
		},
		{
			name:       "unknown sort column",
			filter:     AppointmentFilter{SortBy: "id; DROP TABLE appointments"},
			wantOffset: 0, wantLimit: 10, wantPage: 1,
			wantSort: "appointments.created_at", wantDesc: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.store.listTotal = 42

			page, err := f.svc.FindAll(context.Background(), tt.filter)
			require.NoError(t, err)

			q := f.store.lastQuery
			assert.Equal(t, tt.wantOffset, q.Offset)
			assert.Equal(t, tt.wantLimit, q.Limit)
			assert.Equal(t, tt.wantSort, q.SortColumn)
			assert.Equal(t, tt.wantDesc, q.Descending)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, int64(42), page.Total)
		})
	}
}

func TestAppointmentService_FindAll_Filters(t *testing.T) {
	f := newFixture()
	barber := f.addAttendant("Rafa")

	_, err := f.svc.FindAll(context.Background(), AppointmentFilter{
		StartDate:     "2025-03-01",
		EndDate:       "2025-03-01",
		Status:        models.StatusFinished,
		PaymentMethod: models.PaymentPix,
		AttendantID:   &barber,
		CustomerName:  "  carl ",
	})
	require.NoError(t, err)

	q := f.store.lastQuery
	assert.True(t, q.From.Equal(time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC)))
	assert.True(t, q.To.Equal(time.Date(2025, 3, 2, 3, 0, 0, 0, time.UTC)))
	assert.Equal(t, models.StatusFinished, q.Status)
	assert.Equal(t, models.PaymentPix, q.PaymentMethod)
	assert.Equal(t, barber, *q.AttendantID)
	assert.Equal(t, "carl", q.CustomerName)
}

func TestAppointmentService_FindAll_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		filter AppointmentFilter
		want   error
	}{
		{name: "start after end", filter: AppointmentFilter{StartDate: "2025-03-05", EndDate: "2025-03-01"}, want: ErrInvalidDateRange},
		{name: "malformed date", filter: AppointmentFilter{StartDate: "05/03/2025"}, want: ErrInvalidDateRange},
		{name: "unknown status", filter: AppointmentFilter{Status: "LATE"}, want: ErrInvalidStatus},
		{name: "unknown payment method", filter: AppointmentFilter{PaymentMethod: "CHEQUE"}, want: ErrInvalidPaymentMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.FindAll(context.Background(), tt.filter)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDateBounds_OpenEnded(t *testing.T) {
	from, to, err := dateBounds("2025-03-01", "")
	require.NoError(t, err)
	assert.NotNil(t, from)
	assert.Nil(t, to)

	from, to, err = dateBounds("", "2025-03-01")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.True(t, to.Equal(time.Date(2025, 3, 2, 3, 0, 0, 0, time.UTC)))
}
