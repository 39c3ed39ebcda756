package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"freight-quoter/internal/core/logger"
	"freight-quoter/internal/features/tariffs/domain"
	"freight-quoter/internal/features/tariffs/ports"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// ErrCatalogNotLoaded is returned when no snapshot has been installed yet.
var ErrCatalogNotLoaded = errors.New("catalog not loaded")

var _ ports.CatalogService = (*CatalogStore)(nil)

// CatalogStore holds the current catalog snapshot.
// Readers never lock: they load the pointer once and keep using that snapshot,
// while Reload publishes a fresh one with a single atomic store.
type CatalogStore struct {
	loader  ports.CatalogLoader
	current *atomic.Pointer[domain.Catalog]
	version *atomic.Uint64
	// reloadMu serializes reloads so versions are published in order.
	reloadMu sync.Mutex
	now      func() time.Time
}

// NewCatalogStore creates an empty store. Call Reload before serving quotes.
func NewCatalogStore(loader ports.CatalogLoader) *CatalogStore {
	return &CatalogStore{
		loader:  loader,
		current: atomic.NewPointer[domain.Catalog](nil),
		version: atomic.NewUint64(0),
		now:     time.Now,
	}
}

// Snapshot returns the current catalog.
func (s *CatalogStore) Snapshot() (*domain.Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrCatalogNotLoaded
	}
	return c, nil
}

// Reload reads the source and swaps in a new snapshot. On failure the previous
// snapshot stays in place.
func (s *CatalogStore) Reload(ctx context.Context) (*domain.Catalog, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := logger.Named("catalog")
	start := s.now()

	res, err := s.loader.Load(ctx)
	if err != nil {
		log.Error("Catalog reload failed", zap.String("source", s.loader.Source()), zap.Error(err))
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}

	next := domain.NewCatalog(s.version.Load()+1, start, s.loader.Source(), res.Rows, res.Rejected...)
	for _, diag := range next.Diagnostics() {
		log.Warn("Tariff row excluded",
			zap.String("row_id", diag.RowID),
			zap.String("reason", diag.Reason),
		)
	}

	if next.Len() == 0 {
		log.Error("Catalog reload produced no rows", zap.String("source", s.loader.Source()))
		return nil, fmt.Errorf("service: %w (%d rejected)", domain.ErrEmptyCatalog, len(next.Diagnostics()))
	}

	s.version.Store(next.Version())
	previous := s.current.Swap(next)

	fields := []zap.Field{
		zap.Uint64("version", next.Version()),
		zap.Int("rows", next.Len()),
		zap.Int("rejected", len(next.Diagnostics())),
		zap.Duration("took", s.now().Sub(start)),
	}
	if previous != nil {
		fields = append(fields, zap.Uint64("previous_version", previous.Version()))
	}
	log.Info("Catalog snapshot published", fields...)

	return next, nil
}
