package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"barberpro-backend/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

func sampleAppointment(status models.AppointmentStatus) *models.Appointment {
	attendant := uuid.New()
	return &models.Appointment{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		Customer:    &models.Customer{Name: "Carlos", Phone: "+5511987654321"},
		AttendantID: &attendant,
		Status:      status,
		FinalPrice:  60,
		CreatedAt:   time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

type recordingNotifier struct {
	name  string
	calls *[]string
}

func (r recordingNotifier) AppointmentCreated(context.Context, *models.Appointment) {
	*r.calls = append(*r.calls, r.name+":created")
}

func (r recordingNotifier) AppointmentUpdated(context.Context, *models.Appointment, models.AppointmentStatus) {
	*r.calls = append(*r.calls, r.name+":updated")
}

func TestFanout(t *testing.T) {
	var calls []string
	f := Fanout{recordingNotifier{"kafka", &calls}, recordingNotifier{"board", &calls}}
	a := sampleAppointment(models.StatusWaiting)

	f.AppointmentCreated(context.Background(), a)
	f.AppointmentUpdated(context.Background(), a, models.StatusWaiting)

	assert.Equal(t, []string{"kafka:created", "board:created", "kafka:updated", "board:updated"}, calls)
}

func TestNewAppointmentPayload(t *testing.T) {
	a := sampleAppointment(models.StatusOnService)
	p := NewAppointmentPayload(a)

	assert.Equal(t, a.ID.String(), p.AppointmentID)
	assert.Equal(t, "Carlos", p.CustomerName)
	assert.Equal(t, a.AttendantID.String(), p.AttendantID)
	assert.Equal(t, models.StatusOnService, p.Status)

	a.Customer, a.AttendantID = nil, nil
	p = NewAppointmentPayload(a)
	assert.Empty(t, p.CustomerName)
	assert.Empty(t, p.AttendantID)
}

func TestKafkaPublisher_Enqueue(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "appointments", "barberpro-api", 1, zap.NewNop())
	a := sampleAppointment(models.StatusWaiting)

	p.AppointmentCreated(context.Background(), a)
	// inbox holds one message; this one is dropped
	p.AppointmentUpdated(context.Background(), a, models.StatusWaiting)

	require.Len(t, p.inbox, 1)
	msg := <-p.inbox
	assert.Equal(t, a.ID.String(), string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, EventAppointmentCreated, string(msg.Headers[0].Value))

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, EventAppointmentCreated, env.EventType)
	assert.Equal(t, 1, env.EventVersion)
	assert.Equal(t, "barberpro-api", env.Producer)
	assert.Equal(t, a.ID.String(), env.CorrelationID)

	var payload AppointmentPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, 60.0, payload.FinalPrice)
}

func TestKafkaPublisher_Close(t *testing.T) {
	t.Run("publish after close drops", func(t *testing.T) {
		p := NewKafkaPublisher([]string{"localhost:9092"}, "appointments", "barberpro-api", 4, zap.NewNop())
		a := sampleAppointment(models.StatusWaiting)

		p.Close()
		assert.NotPanics(t, func() {
			p.Close()
			p.AppointmentCreated(context.Background(), a)
			p.AppointmentUpdated(context.Background(), a, models.StatusWaiting)
		})
		assert.Empty(t, p.inbox)
	})

	t.Run("loop exits on close", func(t *testing.T) {
		p := NewKafkaPublisher([]string{"localhost:9092"}, "appointments", "barberpro-api", 4, zap.NewNop())
		p.Start(context.Background())
		p.Close()

		select {
		case <-p.closeCh:
		case <-time.After(time.Second):
			t.Fatal("publisher loop did not exit")
		}
	})
}

type fakeSender struct {
	mu   sync.Mutex
	sent []*twilioApi.CreateMessageParams
	done chan struct{}
	err  error
}

func (f *fakeSender) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.mu.Lock()
	f.sent = append(f.sent, params)
	f.mu.Unlock()
	f.done <- struct{}{}
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func waitSent(t *testing.T, f *fakeSender) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(time.Second):
		t.Fatal("message was not sent")
	}
}

func TestSMSNotifier(t *testing.T) {
	t.Run("queued and turn messages", func(t *testing.T) {
		sender := &fakeSender{done: make(chan struct{}, 2)}
		n := &SMSNotifier{api: sender, from: "+15550001111", logger: zap.NewNop()}

		n.AppointmentCreated(context.Background(), sampleAppointment(models.StatusWaiting))
		waitSent(t, sender)
		n.AppointmentUpdated(context.Background(), sampleAppointment(models.StatusOnService), models.StatusWaiting)
		waitSent(t, sender)

		sender.mu.Lock()
		defer sender.mu.Unlock()
		require.Len(t, sender.sent, 2)
		assert.Equal(t, "+5511987654321", *sender.sent[0].To)
		assert.Equal(t, "+15550001111", *sender.sent[0].From)
		assert.Contains(t, *sender.sent[0].Body, "in the queue")
		assert.Contains(t, *sender.sent[1].Body, "your turn")
	})

	t.Run("other statuses are silent", func(t *testing.T) {
		sender := &fakeSender{done: make(chan struct{}, 1)}
		n := &SMSNotifier{api: sender, from: "+15550001111", logger: zap.NewNop()}

		n.AppointmentUpdated(context.Background(), sampleAppointment(models.StatusFinished), models.StatusOnService)
		a := sampleAppointment(models.StatusWaiting)
		a.Customer.Phone = ""
		n.AppointmentCreated(context.Background(), a)

		select {
		case <-sender.done:
			t.Fatal("unexpected message")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("edits during the service are silent", func(t *testing.T) {
		sender := &fakeSender{done: make(chan struct{}, 2)}
		n := &SMSNotifier{api: sender, from: "+15550001111", logger: zap.NewNop()}
		a := sampleAppointment(models.StatusOnService)

		n.AppointmentUpdated(context.Background(), a, models.StatusWaiting)
		waitSent(t, sender)
		a.PaymentMethod = models.PaymentCreditCard
		n.AppointmentUpdated(context.Background(), a, models.StatusOnService)

		select {
		case <-sender.done:
			t.Fatal("turn message sent twice")
		case <-time.After(50 * time.Millisecond):
		}
		sender.mu.Lock()
		defer sender.mu.Unlock()
		assert.Len(t, sender.sent, 1)
	})

	t.Run("provider failure is swallowed", func(t *testing.T) {
		sender := &fakeSender{done: make(chan struct{}, 1), err: errors.New("invalid number")}
		n := &SMSNotifier{api: sender, from: "+15550001111", logger: zap.NewNop()}

		n.AppointmentCreated(context.Background(), sampleAppointment(models.StatusWaiting))
		waitSent(t, sender)
	})
}

func TestQueueBoard_UnreachableRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()
	b := NewQueueBoard(rdb, zap.NewNop())
	b.timeout = 100 * time.Millisecond

	assert.NotPanics(t, func() {
		b.AppointmentCreated(context.Background(), sampleAppointment(models.StatusWaiting))
	})
	_, err := b.Waiting(context.Background())
	assert.Error(t, err)
}
