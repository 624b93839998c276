package faq

import (
	"backend-faq/internal/metrics"
	"backend-faq/internal/models"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultCacheKey = "faq:dataset"

// CachedSource - read-through cache Redis di depan Source lain.
// Error Redis hanya di-log, request tetap dilayani dari source.
type CachedSource struct {
	client  *redis.Client
	next    Source
	key     string
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewCachedSource(client *redis.Client, next Source, ttl time.Duration, m *metrics.Metrics) *CachedSource {
	return &CachedSource{
		client:  client,
		next:    next,
		key:     DefaultCacheKey,
		ttl:     ttl,
		metrics: m,
	}
}

func (s *CachedSource) Load(ctx context.Context) (*models.Dataset, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	switch {
	case err == nil:
		var ds models.Dataset
		if err := json.Unmarshal(raw, &ds); err == nil {
			if s.metrics != nil {
				s.metrics.CacheHits.Inc()
			}
			return &ds, nil
		}
		log.Printf("cache: entry %s rusak, dibuang", s.key)
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("cache: redis get gagal: %v", err)
	}

	if s.metrics != nil {
		s.metrics.CacheMisses.Inc()
	}

	ds, err := s.next.Load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(ds)
	if err != nil {
		log.Printf("cache: encode dataset gagal: %v", err)
		return ds, nil
	}
	if err := s.client.Set(ctx, s.key, encoded, s.ttl).Err(); err != nil {
		log.Printf("cache: redis set gagal: %v", err)
	}

	return ds, nil
}

// Invalidate menghapus entry cache supaya Load berikutnya baca ulang dari source
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
