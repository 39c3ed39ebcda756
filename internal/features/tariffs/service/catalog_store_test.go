package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"freight-quoter/internal/features/tariffs/domain"
	"freight-quoter/internal/features/tariffs/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogLoader is a mock implementation of ports.CatalogLoader.
type MockCatalogLoader struct {
	mock.Mock
}

func (m *MockCatalogLoader) Load(ctx context.Context) (*ports.LoadResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.LoadResult), args.Error(1)
}

func (m *MockCatalogLoader) Source() string {
	return "mock://catalog"
}

func row(id, carrier string) domain.Row {
	return domain.Row{
		ID:          id,
		Kind:        domain.KindDirect,
		Carrier:     carrier,
		Origin:      "SAO PAULO",
		Destination: "CAMPINAS",
		Schedule: domain.Schedule{
			MinimumCharge:    decimal.NewFromInt(30),
			OverageRatePerKg: decimal.NewFromInt(2),
		},
		MaxWeightKg: decimal.NewFromInt(100),
	}
}

func TestCatalogStore_SnapshotBeforeLoad(t *testing.T) {
	store := NewCatalogStore(new(MockCatalogLoader))

	c, err := store.Snapshot()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
}

func TestCatalogStore_Reload(t *testing.T) {
	ctx := context.Background()

	t.Run("PublishesIncreasingVersions", func(t *testing.T) {
		loader := new(MockCatalogLoader)
		loader.On("Load", ctx).Return(&ports.LoadResult{Rows: []domain.Row{row("direct-2", "A")}}, nil).Twice()
		store := NewCatalogStore(loader)

		first, err := store.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), first.Version())
		assert.Equal(t, "mock://catalog", first.Source())

		second, err := store.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), second.Version())

		current, err := store.Snapshot()
		require.NoError(t, err)
		assert.Same(t, second, current)

		// The earlier snapshot is untouched by the swap.
		assert.Equal(t, uint64(1), first.Version())
		assert.Equal(t, 1, first.Len())
		loader.AssertExpectations(t)
	})

	t.Run("LoaderErrorKeepsPrevious", func(t *testing.T) {
		loader := new(MockCatalogLoader)
		loader.On("Load", ctx).Return(&ports.LoadResult{Rows: []domain.Row{row("direct-2", "A")}}, nil).Once()
		loader.On("Load", ctx).Return(nil, errors.New("disk gone")).Once()
		store := NewCatalogStore(loader)

		first, err := store.Reload(ctx)
		require.NoError(t, err)

		_, err = store.Reload(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")

		current, err := store.Snapshot()
		require.NoError(t, err)
		assert.Same(t, first, current)
	})

	t.Run("AllRowsRejected", func(t *testing.T) {
		bad := row("direct-2", "A")
		bad.MaxWeightKg = decimal.Zero
		loader := new(MockCatalogLoader)
		loader.On("Load", ctx).Return(&ports.LoadResult{
			Rows:     []domain.Row{bad},
			Rejected: []domain.Diagnostic{{RowID: "line-3", Reason: "bad number"}},
		}, nil).Once()
		store := NewCatalogStore(loader)

		_, err := store.Reload(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyCatalog)

		_, err = store.Snapshot()
		assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	})

	t.Run("PartialRejectionStillPublishes", func(t *testing.T) {
		bad := row("direct-3", "B")
		bad.Schedule.MinimumCharge = decimal.NewFromInt(-1)
		loader := new(MockCatalogLoader)
		loader.On("Load", ctx).Return(&ports.LoadResult{
			Rows:     []domain.Row{row("direct-2", "A"), bad},
			Rejected: []domain.Diagnostic{{RowID: "line-4", Reason: "bad number"}},
		}, nil).Once()
		store := NewCatalogStore(loader)

		c, err := store.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
		assert.Len(t, c.Diagnostics(), 2)
	})
}

// TestCatalogStore_ConcurrentReadersSeeWholeSnapshots exercises readers racing a reload loop.
func TestCatalogStore_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	ctx := context.Background()
	loader := new(MockCatalogLoader)
	loader.On("Load", mock.Anything).Return(&ports.LoadResult{
		Rows: []domain.Row{row("direct-2", "A"), row("direct-3", "B")},
	}, nil)
	store := NewCatalogStore(loader)
	_, err := store.Reload(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c, err := store.Snapshot()
				if assert.NoError(t, err) {
					assert.Len(t, c.Rows(domain.KindDirect), 2)
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		_, err := store.Reload(ctx)
		require.NoError(t, err)
	}
	wg.Wait()

	c, _ := store.Snapshot()
	assert.Equal(t, uint64(21), c.Version())
}

// countingCatalog records Reload calls for the refresher test.
type countingCatalog struct {
	mu    sync.Mutex
	calls int
}

func (c *countingCatalog) Snapshot() (*domain.Catalog, error) { return nil, ErrCatalogNotLoaded }

func (c *countingCatalog) Reload(ctx context.Context) (*domain.Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil, errors.New("source offline")
}

func (c *countingCatalog) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestRefresher_Run(t *testing.T) {
	t.Run("DisabledReturnsImmediately", func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			NewRefresher(&countingCatalog{}, 0).Run(context.Background())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("refresher with zero interval did not return")
		}
	})

	t.Run("ReloadsUntilCancelled", func(t *testing.T) {
		cat := &countingCatalog{}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			NewRefresher(cat, 10*time.Millisecond).Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return cat.count() >= 2 }, time.Second, 5*time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("refresher did not stop after cancel")
		}
	})
}
