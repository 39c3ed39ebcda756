package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-quoter/internal/core/logger"
	"freight-quoter/internal/features/quotes/domain"
	"freight-quoter/internal/features/quotes/engine"
	"freight-quoter/internal/features/quotes/ports"
	tariffports "freight-quoter/internal/features/tariffs/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ ports.QuoteService = (*QuoteServiceImpl)(nil)

// QuoteServiceImpl implements ports.QuoteService.
type QuoteServiceImpl struct {
	catalog  tariffports.CatalogService
	resolver engine.HubResolver
	engine   *engine.Engine
	repo     ports.QuoteRepository
	now      func() time.Time
	newID    func() string
}

// NewQuoteService creates a new QuoteServiceImpl.
func NewQuoteService(catalog tariffports.CatalogService, resolver engine.HubResolver, eng *engine.Engine, repo ports.QuoteRepository) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		catalog:  catalog,
		resolver: resolver,
		engine:   eng,
		repo:     repo,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// CreateQuote prices the request against one catalog snapshot and records the result.
// A failed history write is logged; the quote itself is still returned.
func (s *QuoteServiceImpl) CreateQuote(ctx context.Context, req domain.QuoteRequest) (*domain.QuoteRecord, error) {
	log := logger.Named("quotes")

	snapshot, err := s.catalog.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	result, err := s.engine.Quote(snapshot, s.resolver, req)
	if err != nil {
		if errors.Is(err, domain.ErrNoRouteFound) {
			log.Info("No route found",
				zap.String("origin", req.OriginPlace),
				zap.String("destination", req.DestinationPlace),
				zap.Uint64("catalog_version", snapshot.Version()))
		}
		return nil, err
	}

	for _, diag := range result.Diagnostics {
		log.Warn("Tariff row skipped while quoting",
			zap.String("row_id", diag.RowID),
			zap.String("reason", diag.Reason))
	}

	record := &domain.QuoteRecord{
		ID:             s.newID(),
		CreatedAt:      s.now().UTC(),
		CatalogVersion: result.CatalogVersion,
		Request:        req,
		Result:         result,
	}

	if err := s.repo.Save(ctx, record); err != nil {
		log.Error("Failed to record quote", zap.String("quote_id", record.ID), zap.Error(err))
	}

	log.Info("Quote issued",
		zap.String("quote_id", record.ID),
		zap.Int("options", len(result.Complete)),
		zap.String("best_carrier", result.Best.CarrierLabel),
		zap.String("best_cost", result.Best.TotalCost.StringFixed(2)))

	return record, nil
}

// GetQuote retrieves a previously issued quote.
func (s *QuoteServiceImpl) GetQuote(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuoteNotFound, id)
	}

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrQuoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: failed to get quote: %w", err)
	}

	return record, nil
}
