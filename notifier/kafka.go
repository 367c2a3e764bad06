package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"barberpro-backend/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher streams appointment events keyed by appointment id, so every
// event of one appointment lands on the same partition in order. Publishing
// only enqueues; a background loop owns the writer. The inbox is never closed,
// so late publishers after Close drop their event instead of panicking.
type KafkaPublisher struct {
	w         *kafka.Writer
	inbox     chan kafka.Message
	done      chan struct{}
	closeOnce sync.Once
	closeCh   chan struct{}
	producer  string
	logger    *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic, producer string, buf int, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:    make(chan kafka.Message, buf),
		done:     make(chan struct{}),
		closeCh:  make(chan struct{}),
		producer: producer,
		logger:   logger,
	}
}

func (p *KafkaPublisher) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		defer p.closeWriter()
		for {
			select {
			case <-ctx.Done():
				p.drain()
				return
			case <-p.done:
				p.drain()
				return
			case m := <-p.inbox:
				p.write(m)
			}
		}
	}()
}

func (p *KafkaPublisher) drain() {
	for {
		select {
		case m := <-p.inbox:
			p.write(m)
		default:
			return
		}
	}
}

func (p *KafkaPublisher) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.w.WriteMessages(ctx, m); err != nil {
		p.logger.Error("kafka publish failed", zap.String("key", string(m.Key)), zap.Error(err))
	}
}

func (p *KafkaPublisher) closeWriter() {
	if err := p.w.Close(); err != nil {
		p.logger.Warn("kafka writer close", zap.Error(err))
	}
}

func (p *KafkaPublisher) AppointmentCreated(_ context.Context, a *models.Appointment) {
	p.publish(EventAppointmentCreated, a)
}

func (p *KafkaPublisher) AppointmentUpdated(_ context.Context, a *models.Appointment, _ models.AppointmentStatus) {
	p.publish(EventAppointmentUpdated, a)
}

func (p *KafkaPublisher) publish(eventType string, a *models.Appointment) {
	select {
	case <-p.done:
		p.logger.Warn("kafka publisher closed, dropping event",
			zap.String("event_type", eventType),
			zap.String("appointment_id", a.ID.String()))
		return
	default:
	}
	env, err := NewEnvelope(eventType, p.producer, a)
	if err != nil {
		p.logger.Error("encode appointment event", zap.Error(err))
		return
	}
	value, err := json.Marshal(env)
	if err != nil {
		p.logger.Error("encode appointment envelope", zap.Error(err))
		return
	}
	msg := kafka.Message{
		Key:   []byte(a.ID.String()),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	select {
	case p.inbox <- msg:
	default:
		p.logger.Warn("kafka inbox full, dropping event",
			zap.String("event_type", eventType),
			zap.String("appointment_id", a.ID.String()))
	}
}

// Close stops accepting events; the loop flushes what is queued and exits.
// It is safe to call more than once.
func (p *KafkaPublisher) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// WaitClosed blocks until the loop has flushed and closed the writer.
func (p *KafkaPublisher) WaitClosed() { <-p.closeCh }
