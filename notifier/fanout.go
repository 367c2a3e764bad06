package notifier

import (
	"context"

	"barberpro-backend/models"
	"barberpro-backend/services"
)

// Fanout forwards every event to each notifier in order.
type Fanout []services.AppointmentNotifier

func (f Fanout) AppointmentCreated(ctx context.Context, a *models.Appointment) {
	for _, n := range f {
		n.AppointmentCreated(ctx, a)
	}
}

func (f Fanout) AppointmentUpdated(ctx context.Context, a *models.Appointment, previous models.AppointmentStatus) {
	for _, n := range f {
		n.AppointmentUpdated(ctx, a, previous)
	}
}

// Nop discards events.
type Nop struct{}

func (Nop) AppointmentCreated(context.Context, *models.Appointment) {}
func (Nop) AppointmentUpdated(context.Context, *models.Appointment, models.AppointmentStatus) {}
