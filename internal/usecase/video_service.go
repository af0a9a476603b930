package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Postmodum37/searchy/internal/domain/model"
	"github.com/Postmodum37/searchy/internal/domain/repository"
	"github.com/Postmodum37/searchy/internal/infrastructure/metrics"
)

var (
	// ErrEmptyQuery is returned when a search query is blank.
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrInvalidLimit is returned when a search limit is outside the allowed range.
	ErrInvalidLimit = errors.New("search limit out of range")
)

// VideoService defines the interface for video lookup operations. The
// noCache flag on each operation requests a cache bypass; implementations
// without a cache ignore it.
type VideoService interface {
	// Search looks up videos matching the query. A limit of zero selects the
	// configured default.
	Search(ctx context.Context, query string, limit int, noCache bool) ([]model.VideoSearchResult, error)

	// GetVideo retrieves the full detail record for a video ID.
	GetVideo(ctx context.Context, videoID string, noCache bool) (*model.VideoDetail, error)

	// GetAudioStream resolves a directly playable audio URL for a video ID.
	// Returns model.ErrNoPlayableAudio when no format qualifies.
	GetAudioStream(ctx context.Context, videoID string, noCache bool) (*model.AudioStream, error)
}

// VideoServiceConfig holds configuration for VideoService.
type VideoServiceConfig struct {
	// DefaultSearchLimit applies when a caller passes limit 0.
	DefaultSearchLimit int
	// MaxSearchLimit is the largest accepted search limit.
	MaxSearchLimit int
	// AudioURLValidity is the assumed shelf life of upstream-issued playback
	// URLs, reported to callers as the stream's expiry hint.
	AudioURLValidity time.Duration
}

// DefaultVideoServiceConfig returns the default configuration.
func DefaultVideoServiceConfig() VideoServiceConfig {
	return VideoServiceConfig{
		DefaultSearchLimit: 10,
		MaxSearchLimit:     50,
		AudioURLValidity:   6 * time.Hour,
	}
}

type videoService struct {
	extractor repository.MetadataExtractor

	defaultSearchLimit int
	maxSearchLimit     int
	audioURLValidity   time.Duration
}

// NewVideoService creates a VideoService backed by the given extractor.
func NewVideoService(extractor repository.MetadataExtractor, cfg VideoServiceConfig) VideoService {
	return &videoService{
		extractor:          extractor,
		defaultSearchLimit: cfg.DefaultSearchLimit,
		maxSearchLimit:     cfg.MaxSearchLimit,
		audioURLValidity:   cfg.AudioURLValidity,
	}
}

// Search runs an upstream search and shapes the resulting entries.
func (s *videoService) Search(ctx context.Context, query string, limit int, _ bool) ([]model.VideoSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if limit == 0 {
		limit = s.defaultSearchLimit
	}
	if limit < 1 || limit > s.maxSearchLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	target := fmt.Sprintf("ytsearch%d:%s", limit, query)
	info, err := s.extract(ctx, metrics.OpSearch, target)
	if err != nil {
		return nil, fmt.Errorf("search extraction: %w", err)
	}

	return model.SearchResultsFromRaw(info), nil
}

// GetVideo extracts and shapes the full detail record for a video.
func (s *videoService) GetVideo(ctx context.Context, videoID string, _ bool) (*model.VideoDetail, error) {
	info, err := s.extract(ctx, metrics.OpVideo, model.WatchURL(videoID))
	if err != nil {
		return nil, fmt.Errorf("video extraction: %w", err)
	}

	return model.DetailFromRaw(info), nil
}

// GetAudioStream extracts a video and shapes its best playable audio format.
func (s *videoService) GetAudioStream(ctx context.Context, videoID string, _ bool) (*model.AudioStream, error) {
	info, err := s.extract(ctx, metrics.OpAudio, model.WatchURL(videoID))
	if err != nil {
		return nil, fmt.Errorf("audio extraction: %w", err)
	}

	return model.AudioStreamFromRaw(info, s.audioURLValidity, time.Now())
}

func (s *videoService) extract(ctx context.Context, operation, target string) (*model.RawVideoInfo, error) {
	info, err := s.extractor.Extract(ctx, target)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(operation, metrics.ExtractionStatusError).Inc()
		return nil, err
	}
	metrics.ExtractionsTotal.WithLabelValues(operation, metrics.ExtractionStatusSuccess).Inc()
	return info, nil
}
