package jobs

import (
	"context"
	"time"

	"barberpro-backend/services"
	"barberpro-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type attendantSummarizer interface {
	SummarizeByAttendant(ctx context.Context, startDate, endDate string) ([]services.AttendantSummary, error)
}

// DailyReport logs the previous business day's per-attendant summary.
type DailyReport struct {
	summaries attendantSummarizer
	logger    *zap.Logger
	now       func() time.Time
}

func NewDailyReport(summaries attendantSummarizer, logger *zap.Logger) *DailyReport {
	return &DailyReport{summaries: summaries, logger: logger, now: time.Now}
}

// Schedule registers the report on a cron evaluated in the business zone.
// The returned scheduler is already started.
func (r *DailyReport) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(utils.BusinessLocation))
	if _, err := c.AddFunc(spec, func() { r.Run(context.Background()) }); err != nil {
		return nil, err
	}
	c.Start()
	r.logger.Info("daily attendant report scheduled", zap.String("spec", spec))
	return c, nil
}

func (r *DailyReport) Run(ctx context.Context) []services.AttendantSummary {
	start, _ := utils.BusinessDay(r.now())
	day := start.AddDate(0, 0, -1).Format(utils.DateLayout)

	summaries, err := r.summaries.SummarizeByAttendant(ctx, day, day)
	if err != nil {
		r.logger.Error("daily attendant report failed", zap.String("day", day), zap.Error(err))
		return nil
	}
	for _, s := range summaries {
		r.logger.Info("attendant day summary",
			zap.String("day", day),
			zap.String("attendant_id", s.AttendantID.String()),
			zap.String("attendant", s.AttendantName),
			zap.Int("appointments", s.Count),
			zap.Int("service_weight", s.TotalServiceWeight),
			zap.Float64("net_revenue", s.NetRevenue),
			zap.Float64("payment_fees", s.PaymentFees),
			zap.Float64("minutes_per_weight", s.MinutesPerWeight))
	}
	return summaries
}
