package usecase

import (
	"context"
	"time"

	"github.com/Postmodum37/searchy/internal/cache"
	"github.com/Postmodum37/searchy/internal/domain/model"
	"github.com/Postmodum37/searchy/internal/infrastructure/metrics"
)

// Cache key namespaces. Changing one invalidates every deployed key in that
// namespace.
const (
	nsSearch = "search"
	nsVideo  = "video"
	nsAudio  = "audio"
)

// CachedVideoServiceConfig holds configuration for the caching decorator.
type CachedVideoServiceConfig struct {
	// SearchTTL is the TTL for cached search responses.
	SearchTTL time.Duration
	// VideoTTL is the TTL for cached detail and audio-stream responses.
	VideoTTL time.Duration
	// DefaultSearchLimit is applied before key derivation, so an implicit
	// and an explicit default limit share one cache entry.
	DefaultSearchLimit int
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		SearchTTL:          5 * time.Minute,
		VideoTTL:           10 * time.Minute,
		DefaultSearchLimit: 10,
	}
}

// cachedVideoService wraps a VideoService with the response cache. It
// implements the decorator pattern to add caching without modifying the
// underlying service: lookups go through cache.GetOrCompute keyed by
// operation and normalized parameters, and the noCache flag bypasses the
// lookup while still refreshing the entry.
type cachedVideoService struct {
	delegate VideoService
	store    *cache.Store

	searchTTL          time.Duration
	videoTTL           time.Duration
	defaultSearchLimit int
}

// NewCachedVideoService creates a caching decorator around delegate.
func NewCachedVideoService(delegate VideoService, store *cache.Store, cfg CachedVideoServiceConfig) VideoService {
	return &cachedVideoService{
		delegate:           delegate,
		store:              store,
		searchTTL:          cfg.SearchTTL,
		videoTTL:           cfg.VideoTTL,
		defaultSearchLimit: cfg.DefaultSearchLimit,
	}
}

func (s *cachedVideoService) Search(ctx context.Context, query string, limit int, noCache bool) ([]model.VideoSearchResult, error) {
	if limit == 0 {
		limit = s.defaultSearchLimit
	}
	key := cache.DeriveKey(nsSearch, []any{query}, map[string]any{"limit": limit})

	invoked := false
	results, err := cache.GetOrCompute(ctx, s.store, key, s.searchTTL, noCache,
		func(ctx context.Context) ([]model.VideoSearchResult, error) {
			invoked = true
			return s.delegate.Search(ctx, query, limit, noCache)
		})
	recordLookup(metrics.OpSearch, invoked, noCache)
	return results, err
}

func (s *cachedVideoService) GetVideo(ctx context.Context, videoID string, noCache bool) (*model.VideoDetail, error) {
	key := cache.DeriveKey(nsVideo, []any{videoID}, nil)

	invoked := false
	detail, err := cache.GetOrCompute(ctx, s.store, key, s.videoTTL, noCache,
		func(ctx context.Context) (*model.VideoDetail, error) {
			invoked = true
			return s.delegate.GetVideo(ctx, videoID, noCache)
		})
	recordLookup(metrics.OpVideo, invoked, noCache)
	return detail, err
}

func (s *cachedVideoService) GetAudioStream(ctx context.Context, videoID string, noCache bool) (*model.AudioStream, error) {
	key := cache.DeriveKey(nsAudio, []any{videoID}, nil)

	invoked := false
	stream, err := cache.GetOrCompute(ctx, s.store, key, s.videoTTL, noCache,
		func(ctx context.Context) (*model.AudioStream, error) {
			invoked = true
			return s.delegate.GetAudioStream(ctx, videoID, noCache)
		})
	recordLookup(metrics.OpAudio, invoked, noCache)
	return stream, err
}

func recordLookup(operation string, invoked, bypass bool) {
	switch {
	case bypass:
		metrics.CacheOperationsTotal.WithLabelValues(operation, metrics.CacheStatusBypass).Inc()
	case invoked:
		metrics.CacheOperationsTotal.WithLabelValues(operation, metrics.CacheStatusMiss).Inc()
	default:
		metrics.CacheOperationsTotal.WithLabelValues(operation, metrics.CacheStatusHit).Inc()
	}
}
