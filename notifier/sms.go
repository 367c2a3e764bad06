package notifier

import (
	"context"
	"fmt"

	"barberpro-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

type messageSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSNotifier texts the customer when they join the queue and when their
// turn starts.
type SMSNotifier struct {
	api    messageSender
	from   string
	logger *zap.Logger
}

func NewSMSNotifier(accountSID, authToken, from string, logger *zap.Logger) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSNotifier{api: client.Api, from: from, logger: logger}
}

func (n *SMSNotifier) AppointmentCreated(_ context.Context, a *models.Appointment) {
	if a.Customer == nil {
		return
	}
	n.send(a, fmt.Sprintf("Hi %s, you're in the queue. We'll text you when it's your turn.", a.Customer.Name))
}

// AppointmentUpdated texts only when the update moved the appointment into
// ON_SERVICE; later edits during the service stay silent.
func (n *SMSNotifier) AppointmentUpdated(_ context.Context, a *models.Appointment, previous models.AppointmentStatus) {
	if a.Customer == nil || a.Status != models.StatusOnService || previous == models.StatusOnService {
		return
	}
	n.send(a, fmt.Sprintf("Hi %s, it's your turn! Please head to the chair.", a.Customer.Name))
}

func (n *SMSNotifier) send(a *models.Appointment, body string) {
	if a.Customer.Phone == "" {
		return
	}
	id := a.ID.String()
	go func(to string) {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom(n.from)
		params.SetBody(body)

		resp, err := n.api.CreateMessage(params)
		if err != nil {
			n.logger.Warn("sms send failed",
				zap.String("appointment_id", id), zap.Error(err))
			return
		}
		if resp.Sid != nil {
			n.logger.Info("sms sent",
				zap.String("appointment_id", id), zap.String("sid", *resp.Sid))
		}
	}(a.Customer.Phone)
}
