package notifier

import (
	"encoding/json"
	"time"

	"barberpro-backend/models"

	"github.com/google/uuid"
)

const (
	EventAppointmentCreated = "AppointmentCreated"
	EventAppointmentUpdated = "AppointmentUpdated"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // appointment id
	Payload       json.RawMessage `json:"payload"`
}

// AppointmentPayload is the queue-facing view of an appointment.
type AppointmentPayload struct {
	AppointmentID string                   `json:"appointment_id"`
	CustomerID    string                   `json:"customer_id"`
	CustomerName  string                   `json:"customer_name,omitempty"`
	AttendantID   string                   `json:"attendant_id,omitempty"`
	Status        models.AppointmentStatus `json:"status"`
	FinalPrice    float64                  `json:"final_price"`
	PaymentMethod models.PaymentMethod     `json:"payment_method,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	OnServiceAt   *time.Time               `json:"on_service_at,omitempty"`
	FinishedAt    *time.Time               `json:"finished_at,omitempty"`
}

func NewAppointmentPayload(a *models.Appointment) AppointmentPayload {
	p := AppointmentPayload{
		AppointmentID: a.ID.String(),
		CustomerID:    a.CustomerID.String(),
		Status:        a.Status,
		FinalPrice:    a.FinalPrice,
		PaymentMethod: a.PaymentMethod,
		CreatedAt:     a.CreatedAt,
		OnServiceAt:   a.OnServiceAt,
		FinishedAt:    a.FinishedAt,
	}
	if a.Customer != nil {
		p.CustomerName = a.Customer.Name
	}
	if a.AttendantID != nil {
		p.AttendantID = a.AttendantID.String()
	}
	return p
}

func NewEnvelope(eventType, producer string, a *models.Appointment) (Envelope, error) {
	payload, err := json.Marshal(NewAppointmentPayload(a))
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: a.ID.String(),
		Payload:       payload,
	}, nil
}
