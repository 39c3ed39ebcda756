package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := NewPool(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := NewPool(context.Background(), "postgres://user:pa ss@:bad-port/db")
		assert.Error(t, err)
	})

	t.Run("LazyConnect", func(t *testing.T) {
		pool, err := NewPool(context.Background(), "postgres://quoter@127.0.0.1:1/tariffs?sslmode=disable")
		require.NoError(t, err)
		defer pool.Close()

		cfg := pool.Config()
		assert.Equal(t, int32(4), cfg.MaxConns)
		assert.Equal(t, "freight-quoter", cfg.ConnConfig.RuntimeParams["application_name"])
	})
}
