package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tunestream/analytics/internal/domain"
)

// MockAnalyticsService is a mock implementation of analytics.Service
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) RecordEvent(ctx context.Context, event domain.UserEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAnalyticsService) TopTracks(ctx context.Context, userID int64, limit int) ([]domain.TopTrack, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopTrack), args.Error(1)
}

func (m *MockAnalyticsService) TopArtists(ctx context.Context, userID int64, limit int) ([]domain.TopArtist, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopArtist), args.Error(1)
}

// MockRecommendService is a mock implementation of recommend.Service
type MockRecommendService struct {
	mock.Mock
}

func (m *MockRecommendService) PopularCollections(ctx context.Context, limit int) ([]domain.PopularCollection, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularCollection), args.Error(1)
}

func (m *MockRecommendService) RecentCollections(ctx context.Context, userID int64, limit int, cursor string) ([]domain.RecentCollection, string, error) {
	args := m.Called(ctx, userID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.RecentCollection), args.String(1), args.Error(2)
}

func (m *MockRecommendService) RecentTracks(ctx context.Context, userID int64, limit int, cursor string) ([]domain.RecentTrack, string, error) {
	args := m.Called(ctx, userID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.RecentTrack), args.String(1), args.Error(2)
}
