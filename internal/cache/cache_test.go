package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := New(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSetAndGetJSON(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type metrics struct {
		TotalRooms int64   `json:"total_rooms"`
		Revenue    float64 `json:"revenue"`
	}

	require.NoError(t, c.SetJSON(ctx, "dashboard:metrics", metrics{TotalRooms: 12, Revenue: 540000}, time.Minute))

	var got metrics
	ok, err := c.GetJSON(ctx, "dashboard:metrics", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(12), got.TotalRooms)
	assert.Equal(t, float64(540000), got.Revenue)
}

func TestGetJSON_Miss(t *testing.T) {
	c := newTestCache(t)

	var got map[string]any
	ok, err := c.GetJSON(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var got string
	ok, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
