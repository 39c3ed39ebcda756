package ports

import (
	"context"

	"freight-quoter/internal/features/quotes/domain"
)

// QuoteService defines the primary port for quote operations.
type QuoteService interface {
	// CreateQuote prices the request against the current catalog and records it.
	CreateQuote(ctx context.Context, req domain.QuoteRequest) (*domain.QuoteRecord, error)
	// GetQuote returns a previously issued quote. Returns domain.ErrQuoteNotFound when absent.
	GetQuote(ctx context.Context, id string) (*domain.QuoteRecord, error)
}

// QuoteRepository defines the secondary port for quote history.
type QuoteRepository interface {
	Save(ctx context.Context, record *domain.QuoteRecord) error
	// Get returns domain.ErrQuoteNotFound when the record is missing or expired.
	Get(ctx context.Context, id string) (*domain.QuoteRecord, error)
}
