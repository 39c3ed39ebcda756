package domain

import (
	"errors"
	"time"
)

var (
	// ErrQuoteNotFound is returned when a quote ID is unknown or its history entry expired.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrCatalogUnavailable is returned when no catalog snapshot can serve the request.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// QuoteRecord is an issued quote as kept in history.
type QuoteRecord struct {
	ID             string        `json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	CatalogVersion uint64        `json:"catalog_version"`
	Request        QuoteRequest  `json:"request"`
	Result         *RankedResult `json:"result"`
}
