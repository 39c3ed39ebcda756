package service

import (
	"context"
	"time"

	"freight-quoter/internal/core/logger"
	"freight-quoter/internal/features/tariffs/ports"

	"go.uber.org/zap"
)

// Refresher reloads the catalog on a fixed interval.
type Refresher struct {
	catalog  ports.CatalogService
	interval time.Duration
}

// NewRefresher creates a Refresher. A non-positive interval makes Run return immediately.
func NewRefresher(catalog ports.CatalogService, interval time.Duration) *Refresher {
	return &Refresher{catalog: catalog, interval: interval}
}

// Run blocks until ctx is cancelled. Failed reloads are logged and the
// previous snapshot keeps serving.
func (r *Refresher) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	log := logger.Named("catalog")
	log.Info("Catalog refresher started", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Catalog refresher stopped")
			return
		case <-ticker.C:
			if _, err := r.catalog.Reload(ctx); err != nil {
				log.Warn("Scheduled catalog reload failed; keeping current snapshot", zap.Error(err))
			}
		}
	}
}
