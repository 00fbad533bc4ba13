package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func newTestCache(t *testing.T) (*RangeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRangeCache(client, time.Minute), mr
}

func TestRangeCache_SetGetBump(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	records := []*domain.DailyMetric{
		{Date: start, Sales: decimal.RequireFromString("100.50"), Customers: 3, ConversionRate: 0.1},
		{Date: end, Sales: decimal.RequireFromString("200.00"), Customers: 6, ConversionRate: 0.2},
	}

	_, ok := cache.Get(ctx, start, end)
	assert.False(t, ok)

	cache.Set(ctx, start, end, records)
	assert.True(t, mr.Exists("sales_data:range:2024-01-01:2024-01-02:v0"))
	assert.Equal(t, time.Minute, mr.TTL("sales_data:range:2024-01-01:2024-01-02:v0"))

	cached, ok := cache.Get(ctx, start, end)
	require.True(t, ok)
	require.Len(t, cached, 2)
	assert.Equal(t, start, cached[0].Date)
	assert.Equal(t, "100.5", cached[0].Sales.String())
	assert.Equal(t, 6, cached[1].Customers)

	cache.Bump(ctx)
	_, ok = cache.Get(ctx, start, end)
	assert.False(t, ok, "após o bump a versão antiga não deve ser lida")
}

func TestRangeCache_Disabled(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var nilCache *RangeCache
	nilCache.Set(ctx, day, day, []*domain.DailyMetric{{Date: day}})
	nilCache.Bump(ctx)
	_, ok := nilCache.Get(ctx, day, day)
	assert.False(t, ok)

	noClient := NewRangeCache(nil, time.Minute)
	_, ok = noClient.Get(ctx, day, day)
	assert.False(t, ok)
}

func TestRangeCache_RedisDown(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mr.Close()

	cache.Set(ctx, day, day, []*domain.DailyMetric{{Date: day}})
	_, ok := cache.Get(ctx, day, day)
	assert.False(t, ok)
}

func TestRangeCache_Corrupted(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, mr.Set("sales_data:range:2024-01-01:2024-01-01:v0", "{nao-e-json"))

	_, ok := cache.Get(ctx, day, day)
	assert.False(t, ok)
}
