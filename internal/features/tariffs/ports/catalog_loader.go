package ports

import (
	"context"

	"freight-quoter/internal/features/tariffs/domain"
)

// LoadResult is what a loader hands to the catalog store.
type LoadResult struct {
	// Rows are the parsed rows, not yet validated against the catalog invariants.
	Rows []domain.Row
	// Rejected lists source lines that could not be turned into a row.
	Rejected []domain.Diagnostic
}

// CatalogLoader reads the tariff table from its source of record.
type CatalogLoader interface {
	// Load reads the complete table. A partial read is an error.
	Load(ctx context.Context) (*LoadResult, error)
	// Source describes where rows come from, for diagnostics.
	Source() string
}

// CatalogService is the primary port used by handlers and the quote service.
type CatalogService interface {
	// Snapshot returns the current immutable catalog.
	Snapshot() (*domain.Catalog, error)
	// Reload builds a new snapshot from the source and swaps it in atomically.
	Reload(ctx context.Context) (*domain.Catalog, error)
}
