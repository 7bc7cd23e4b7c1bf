package jobs

import (
	"context"
	"log/slog"

	"ordermanagement/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically reports manufacturing orders that have
// passed their expected completion without finishing.
type OverdueOrdersJob struct {
	handler queries.GetOverdueManufacturingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrdersJob creates a new job for monitoring overdue manufacturing
// orders. Uses GetOverdueManufacturingOrdersQueryHandler to scan once a minute.
func NewOverdueOrdersJob(
	handler queries.GetOverdueManufacturingOrdersQueryHandler,
	logger *slog.Logger,
) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue monitor to run once a minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOverdueManufacturingOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders scan failed", "error", err)
			return
		}

		for _, order := range orders {
			j.logger.WarnContext(ctx, "Manufacturing order is overdue",
				"order_id", order.ID,
				"product_code", order.ProductCode,
				"status", order.Status,
				"expected_completion", order.ExpectedCompletion,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Stop stops the overdue monitor.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
