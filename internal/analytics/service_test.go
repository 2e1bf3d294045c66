package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/repository"
)

func TestRecordEvent_Success(t *testing.T) {
	repo := new(repository.MockUserEvents)
	svc := NewService(repo)
	ctx := context.Background()

	trackID := int64(42)
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2025, 6, 1, 15, 30, 0, 0, loc)

	var stored domain.UserEvent
	repo.On("Add", ctx, mock.AnythingOfType("domain.UserEvent")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(domain.UserEvent)
		}).
		Return(nil)

	err := svc.RecordEvent(ctx, domain.UserEvent{
		UserID:       7,
		TrackID:      &trackID,
		EventType:    domain.EventPlayStart,
		ContextType:  domain.ContextAlbum,
		TimestampUTC: ts,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, stored.ID, "event should get a fresh id")
	assert.Equal(t, int64(7), stored.UserID)
	require.NotNil(t, stored.TrackID)
	assert.Equal(t, int64(42), *stored.TrackID)
	assert.Equal(t, time.UTC, stored.TimestampUTC.Location(), "timestamp should be normalized to UTC")
	assert.True(t, stored.TimestampUTC.Equal(ts))
	repo.AssertExpectations(t)
}

func TestRecordEvent_AssignsUniqueIDs(t *testing.T) {
	repo := new(repository.MockUserEvents)
	svc := NewService(repo)
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)
	repo.On("Add", ctx, mock.AnythingOfType("domain.UserEvent")).
		Run(func(args mock.Arguments) {
			seen[args.Get(1).(domain.UserEvent).ID] = true
		}).
		Return(nil)

	for i := 0; i < 5; i++ {
		err := svc.RecordEvent(ctx, domain.UserEvent{
			UserID:       1,
			EventType:    domain.EventLike,
			TimestampUTC: time.Now(),
		})
		require.NoError(t, err)
	}

	assert.Len(t, seen, 5, "each event should get its own id")
}

func TestRecordEvent_Validation(t *testing.T) {
	tests := []struct {
		name    string
		event   domain.UserEvent
		wantErr error
	}{
		{
			name:    "missing user",
			event:   domain.UserEvent{TimestampUTC: time.Now()},
			wantErr: domain.ErrUserRequired,
		},
		{
			name:    "negative user",
			event:   domain.UserEvent{UserID: -3, TimestampUTC: time.Now()},
			wantErr: domain.ErrUserRequired,
		},
		{
			name:    "missing timestamp",
			event:   domain.UserEvent{UserID: 7},
			wantErr: domain.ErrTimestampRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repository.MockUserEvents)
			svc := NewService(repo)

			err := svc.RecordEvent(context.Background(), tt.event)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Add")
		})
	}
}

func TestRecordEvent_RepoError(t *testing.T) {
	repo := new(repository.MockUserEvents)
	svc := NewService(repo)
	ctx := context.Background()

	repoErr := errors.New("connection refused")
	repo.On("Add", ctx, mock.AnythingOfType("domain.UserEvent")).Return(repoErr)

	err := svc.RecordEvent(ctx, domain.UserEvent{UserID: 1, TimestampUTC: time.Now()})
	assert.ErrorIs(t, err, repoErr)
}

func TestTopTracks_LimitPolicy(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero uses default", 0, DefaultTopTracksLimit},
		{"negative uses default", -1, DefaultTopTracksLimit},
		{"explicit passes through", 25, 25},
		{"above max is clamped", 500, MaxTopTracksLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repository.MockUserEvents)
			svc := NewService(repo)
			ctx := context.Background()

			repo.On("TopTracks", ctx, int64(9), tt.wantLimit).
				Return([]domain.TopTrack{}, nil)

			_, err := svc.TopTracks(ctx, 9, tt.limit)
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestTopArtists_LimitPolicy(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero uses default", 0, DefaultTopArtistsLimit},
		{"explicit passes through", 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repository.MockUserEvents)
			svc := NewService(repo)
			ctx := context.Background()

			repo.On("TopArtists", ctx, int64(9), tt.wantLimit).
				Return([]domain.TopArtist{}, nil)

			_, err := svc.TopArtists(ctx, 9, tt.limit)
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestTopTracks_PropagatesResults(t *testing.T) {
	repo := new(repository.MockUserEvents)
	svc := NewService(repo)
	ctx := context.Background()

	want := []domain.TopTrack{
		{TrackID: 200, PlayCount: 3},
		{TrackID: 100, PlayCount: 1},
	}
	repo.On("TopTracks", ctx, int64(4), 10).Return(want, nil)

	got, err := svc.TopTracks(ctx, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
