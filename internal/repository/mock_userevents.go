package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tunestream/analytics/internal/domain"
)

// MockUserEvents is a mock implementation of the UserEvents interface
type MockUserEvents struct {
	mock.Mock
}

func (m *MockUserEvents) Add(ctx context.Context, event domain.UserEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockUserEvents) PopularCollections(ctx context.Context, limit int, weights PopularityWeights) ([]domain.PopularCollection, error) {
	args := m.Called(ctx, limit, weights)
	return args.Get(0).([]domain.PopularCollection), args.Error(1)
}

func (m *MockUserEvents) RecentCollections(ctx context.Context, userID int64, limit int, cursor *KeysetCursor) ([]domain.RecentCollection, error) {
	args := m.Called(ctx, userID, limit, cursor)
	return args.Get(0).([]domain.RecentCollection), args.Error(1)
}

func (m *MockUserEvents) RecentTracks(ctx context.Context, userID int64, limit int, cursor *KeysetCursor) ([]domain.RecentTrack, error) {
	args := m.Called(ctx, userID, limit, cursor)
	return args.Get(0).([]domain.RecentTrack), args.Error(1)
}

func (m *MockUserEvents) TopTracks(ctx context.Context, userID int64, limit int) ([]domain.TopTrack, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.TopTrack), args.Error(1)
}

func (m *MockUserEvents) TopArtists(ctx context.Context, userID int64, limit int) ([]domain.TopArtist, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.TopArtist), args.Error(1)
}
