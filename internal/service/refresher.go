package service

import (
	"context"
	"time"

	"covid_dashboard/internal/logger"
	"covid_dashboard/internal/models"
)

type refresher interface {
	Refresh(ctx context.Context) (models.Snapshot, error)
}

// RefresherService periodically refreshes the dataset. A failed refresh is not
// retried early; the next tick is the next attempt.
type RefresherService struct {
	data refresher
	log  *logger.Logger
}

func NewRefresherService(data refresher, log *logger.Logger) *RefresherService {
	return &RefresherService{data: data, log: log}
}

// Run ticks at interval until ctx is canceled. A non-positive interval disables it.
func (r *RefresherService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		if r.log != nil {
			r.log.Infow("periodic_refresh_disabled")
		}
		return
	}

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			// errors are logged and recorded by the dataset service
			_, _ = r.data.Refresh(ctx)
		}
	}
}
