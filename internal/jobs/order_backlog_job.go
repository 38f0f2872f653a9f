package jobs

import (
	"context"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// backlogSchedule runs the backlog report once a minute.
const backlogSchedule = "0 * * * * *"

// OrderBacklogJob periodically reports how many orders sit in each
// workflow status. The report goes to the log, giving operators a
// heartbeat view of the backlog without querying the database by hand.
type OrderBacklogJob struct {
	handler queries.GetOrderSummaryQueryHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewOrderBacklogJob creates a job that logs the order backlog summary.
// Uses GetOrderSummaryQueryHandler to count orders per status once a minute.
func NewOrderBacklogJob(handler queries.GetOrderSummaryQueryHandler, logger *zap.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "order_backlog_job")),
	}
}

// Start begins the backlog reporting job.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(backlogSchedule, func() {
		ctx := context.Background()
		query := queries.NewGetOrderSummaryQuery()

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.Error("Order backlog job failed", zap.Error(err))
			return
		}

		j.logger.Info("Order backlog",
			zap.Int64("total", summary.Total),
			zap.Int64("created", summary.Counts["CREATED"]),
			zap.Int64("validated", summary.Counts["VALIDATED"]),
			zap.Int64("approved", summary.Counts["APPROVED"]),
			zap.Int64("rejected", summary.Counts["REJECTED"]),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog reporting job.
func (j *OrderBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Order backlog job stopped")
}
