package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrLoadWithoutRedis(t *testing.T) {
	c := NewJSONCache(nil, "stats", 30*time.Second)

	calls := 0
	load := func(context.Context) (map[string]int, error) {
		calls++
		return map[string]int{"total": calls}, nil
	}

	first, err := GetOrLoad(context.Background(), c, "auctions", load)
	require.NoError(t, err)
	second, err := GetOrLoad(context.Background(), c, "auctions", load)
	require.NoError(t, err)

	assert.Equal(t, 1, first["total"])
	assert.Equal(t, 2, second["total"])
	assert.Equal(t, 2, calls)
}

func TestGetOrLoadNilCachePropagatesError(t *testing.T) {
	boom := errors.New("boom")

	_, err := GetOrLoad(context.Background(), nil, "k", func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}
