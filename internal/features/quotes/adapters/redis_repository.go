package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freight-quoter/internal/core/cache"
	"freight-quoter/internal/features/quotes/domain"
	"freight-quoter/internal/features/quotes/ports"
)

const quoteKeyPrefix = "quote:"

var _ ports.QuoteRepository = (*RedisQuoteRepository)(nil)

// RedisQuoteRepository implements ports.QuoteRepository on top of the cache.
type RedisQuoteRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisQuoteRepository creates a repository whose entries expire after ttl.
// A zero ttl keeps quotes forever.
func NewRedisQuoteRepository(c cache.Cache, ttl time.Duration) *RedisQuoteRepository {
	return &RedisQuoteRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the quote under its ID.
func (r *RedisQuoteRepository) Save(ctx context.Context, record *domain.QuoteRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	if err := r.cache.Set(ctx, quoteKeyPrefix+record.ID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save quote %s: %w", record.ID, err)
	}

	return nil
}

// Get retrieves a quote by ID.
func (r *RedisQuoteRepository) Get(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	data, err := r.cache.Get(ctx, quoteKeyPrefix+id)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, fmt.Errorf("%w: %s", domain.ErrQuoteNotFound, id)
		}
		return nil, fmt.Errorf("failed to get quote %s: %w", id, err)
	}

	var record domain.QuoteRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote %s: %w", id, err)
	}

	return &record, nil
}
