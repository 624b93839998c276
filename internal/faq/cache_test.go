package faq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"backend-faq/internal/metrics"
	"backend-faq/internal/models"
)

type countingSource struct {
	calls int
	ds    *models.Dataset
	err   error
}

func (s *countingSource) Load(ctx context.Context) (*models.Dataset, error) {
	s.calls++
	return s.ds, s.err
}

func newTestDataset() *models.Dataset {
	return &models.Dataset{
		Title: "FAQ",
		Tabs:  []string{"Platform"},
		FAQs:  map[string][]models.FAQ{"Platform": {{Question: "q1", Answer: "a1"}}},
	}
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCachedSourceReadThrough(t *testing.T) {
	mr, client := newTestRedis(t)
	next := &countingSource{ds: newTestDataset()}
	m := metrics.New(prometheus.NewRegistry())
	src := NewCachedSource(client, next, time.Minute, m)

	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Count())
	require.True(t, mr.Exists(DefaultCacheKey))
	require.Equal(t, time.Minute, mr.TTL(DefaultCacheKey))

	ds, err = src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "q1", ds.FAQs["Platform"][0].Question)
	require.Equal(t, 1, next.calls)
	require.Equal(t, float64(1), testutil.ToFloat64(m.CacheHits))
	require.Equal(t, float64(1), testutil.ToFloat64(m.CacheMisses))
}

func TestCachedSourceExpiryAndInvalidate(t *testing.T) {
	mr, client := newTestRedis(t)
	next := &countingSource{ds: newTestDataset()}
	src := NewCachedSource(client, next, time.Minute, nil)

	_, err := src.Load(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, next.calls)

	require.NoError(t, src.Invalidate(context.Background()))
	require.False(t, mr.Exists(DefaultCacheKey))
}

func TestCachedSourceDropsCorruptEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	require.NoError(t, mr.Set(DefaultCacheKey, "{not json"))
	next := &countingSource{ds: newTestDataset()}

	ds, err := NewCachedSource(client, next, time.Minute, nil).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Count())
	require.Equal(t, 1, next.calls)
}

func TestCachedSourceRedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()
	next := &countingSource{ds: newTestDataset()}

	ds, err := NewCachedSource(client, next, time.Minute, nil).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Count())
}

func TestCachedSourcePropagatesSourceError(t *testing.T) {
	_, client := newTestRedis(t)
	next := &countingSource{err: errors.New("db down")}

	_, err := NewCachedSource(client, next, time.Minute, nil).Load(context.Background())
	require.ErrorContains(t, err, "db down")
}
