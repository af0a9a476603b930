package usecase

import (
	"context"
	"sync/atomic"

	"github.com/Postmodum37/searchy/internal/domain/model"
)

// mockExtractor is a mock implementation of repository.MetadataExtractor.
type mockExtractor struct {
	extractFn func(ctx context.Context, target string) (*model.RawVideoInfo, error)
	targets   []string
}

func (m *mockExtractor) Extract(ctx context.Context, target string) (*model.RawVideoInfo, error) {
	m.targets = append(m.targets, target)
	if m.extractFn != nil {
		return m.extractFn(ctx, target)
	}
	return &model.RawVideoInfo{}, nil
}

// mockVideoService is a mock implementation of VideoService for decorator tests.
type mockVideoService struct {
	searchFn         func(ctx context.Context, query string, limit int, noCache bool) ([]model.VideoSearchResult, error)
	getVideoFn       func(ctx context.Context, videoID string, noCache bool) (*model.VideoDetail, error)
	getAudioStreamFn func(ctx context.Context, videoID string, noCache bool) (*model.AudioStream, error)

	searchCount   atomic.Int32
	getVideoCount atomic.Int32
	getAudioCount atomic.Int32
}

func (m *mockVideoService) Search(ctx context.Context, query string, limit int, noCache bool) ([]model.VideoSearchResult, error) {
	m.searchCount.Add(1)
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit, noCache)
	}
	return nil, nil
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID string, noCache bool) (*model.VideoDetail, error) {
	m.getVideoCount.Add(1)
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, videoID, noCache)
	}
	return nil, nil
}

func (m *mockVideoService) GetAudioStream(ctx context.Context, videoID string, noCache bool) (*model.AudioStream, error) {
	m.getAudioCount.Add(1)
	if m.getAudioStreamFn != nil {
		return m.getAudioStreamFn(ctx, videoID, noCache)
	}
	return nil, nil
}
