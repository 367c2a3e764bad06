package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberpro-backend/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// ChannelQueue carries every appointment change for live queue screens.
	ChannelQueue = "queue:appointments"

	// KeyAppointmentStatus caches the latest payload: appointment_status:{id}
	KeyAppointmentStatus = "appointment_status:%s"

	// KeyWaiting is a sorted set of waiting appointment ids scored by createdAt.
	KeyWaiting = "queue:waiting"

	TTLStatusCache = 12 * time.Hour
)

// QueueBoard mirrors appointment state into Redis for the shop's real-time
// queue display.
type QueueBoard struct {
	rdb     *redis.Client
	logger  *zap.Logger
	timeout time.Duration
}

func NewQueueBoard(rdb *redis.Client, logger *zap.Logger) *QueueBoard {
	return &QueueBoard{rdb: rdb, logger: logger, timeout: 2 * time.Second}
}

func (b *QueueBoard) AppointmentCreated(ctx context.Context, a *models.Appointment) {
	b.push(ctx, EventAppointmentCreated, a)
}

func (b *QueueBoard) AppointmentUpdated(ctx context.Context, a *models.Appointment, _ models.AppointmentStatus) {
	b.push(ctx, EventAppointmentUpdated, a)
}

func (b *QueueBoard) push(ctx context.Context, eventType string, a *models.Appointment) {
	body, err := json.Marshal(struct {
		Type string `json:"type"`
		AppointmentPayload
	}{eventType, NewAppointmentPayload(a)})
	if err != nil {
		b.logger.Error("encode queue update", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
	defer cancel()

	id := a.ID.String()
	pipe := b.rdb.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf(KeyAppointmentStatus, id), body, TTLStatusCache)
	if a.Status == models.StatusWaiting {
		pipe.ZAdd(ctx, KeyWaiting, redis.Z{Score: float64(a.CreatedAt.Unix()), Member: id})
	} else {
		pipe.ZRem(ctx, KeyWaiting, id)
	}
	pipe.Publish(ctx, ChannelQueue, body)
	if _, err := pipe.Exec(ctx); err != nil {
		b.logger.Warn("queue board update failed",
			zap.String("appointment_id", id), zap.Error(err))
	}
}

// Waiting returns the ids currently waiting, oldest first.
func (b *QueueBoard) Waiting(ctx context.Context) ([]string, error) {
	return b.rdb.ZRange(ctx, KeyWaiting, 0, -1).Result()
}
