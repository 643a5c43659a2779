package jobs

import (
	"context"
	"log/slog"

	"foodrun/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// MarketplaceSummaryJob periodically logs a snapshot of marketplace health:
// how many orders are waiting for a driver and which restaurant currently
// holds the best food rating. The schedule is a standard cron expression
// (descriptors like "@every 1m" work too).
type MarketplaceSummaryJob struct {
	spec           string
	pendingHandler queries.GetPendingOrdersQueryHandler
	menuHandler    queries.GetMenuQueryHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewMarketplaceSummaryJob creates the summary job. The spec decides how often
// the snapshot is taken.
func NewMarketplaceSummaryJob(
	spec string,
	pendingHandler queries.GetPendingOrdersQueryHandler,
	menuHandler queries.GetMenuQueryHandler,
	logger *slog.Logger,
) *MarketplaceSummaryJob {
	return &MarketplaceSummaryJob{
		spec:           spec,
		pendingHandler: pendingHandler,
		menuHandler:    menuHandler,
		cron:           cron.New(),
		logger:         logger.With("component", "marketplace_summary_job"),
	}
}

// Start schedules the job. Returns an error if the cron spec does not parse.
func (j *MarketplaceSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Marketplace summary job started", "schedule", j.spec)
	return nil
}

// Stop stops the job.
func (j *MarketplaceSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Marketplace summary job stopped")
}

func (j *MarketplaceSummaryJob) run() {
	ctx := context.Background()

	pending, err := j.pendingHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Marketplace summary job failed", "error", err)
		return
	}

	menu, err := j.menuHandler.Handle(ctx, queries.NewGetMenuQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Marketplace summary job failed", "error", err)
		return
	}

	attrs := []any{"pending_orders", len(pending)}
	if name, avg, ok := bestRestaurant(menu); ok {
		attrs = append(attrs, "top_restaurant", name, "top_average", avg)
	}

	j.logger.InfoContext(ctx, "Marketplace summary", attrs...)
}

// bestRestaurant picks the rated restaurant with the highest average food
// score. Ties go to the first in menu order.
func bestRestaurant(menu []queries.RestaurantMenuResponse) (string, string, bool) {
	best := -1
	for i := range menu {
		if menu[i].Average == nil {
			continue
		}
		if best < 0 || menu[i].Average.GreaterThan(*menu[best].Average) {
			best = i
		}
	}
	if best < 0 {
		return "", "", false
	}

	return menu[best].Name, menu[best].Average.StringFixed(2), true
}
