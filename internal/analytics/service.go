package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/logger"
	"github.com/tunestream/analytics/internal/metrics"
	"github.com/tunestream/analytics/internal/repository"
)

// Service handles event ingestion and per-user frequency rankings.
type Service interface {
	// RecordEvent assigns a fresh unique id to the event and appends it
	// to the store. No deduplication is performed; corrections are
	// modeled as new events.
	RecordEvent(ctx context.Context, event domain.UserEvent) error

	// TopTracks returns the user's most played tracks, ordered by play
	// count desc, track id desc.
	TopTracks(ctx context.Context, userID int64, limit int) ([]domain.TopTrack, error)

	// TopArtists returns the user's most played artists, ordered by play
	// count desc, artist id desc.
	TopArtists(ctx context.Context, userID int64, limit int) ([]domain.TopArtist, error)
}

type service struct {
	repo repository.UserEvents
}

// NewService creates a new analytics service
func NewService(repo repository.UserEvents) Service {
	return &service{repo: repo}
}

func (s *service) RecordEvent(ctx context.Context, event domain.UserEvent) error {
	if event.UserID <= 0 {
		return domain.ErrUserRequired
	}
	if event.TimestampUTC.IsZero() {
		return domain.ErrTimestampRequired
	}

	event.ID = uuid.New()
	event.TimestampUTC = event.TimestampUTC.UTC()

	if err := s.repo.Add(ctx, event); err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	metrics.EventsIngested.WithLabelValues(event.EventType.String()).Inc()
	logger.FromContext(ctx).Debug("Event recorded",
		"event_id", event.ID,
		"user_id", event.UserID,
		"event_type", event.EventType.String(),
		"context_type", event.ContextType.String())

	return nil
}

func (s *service) TopTracks(ctx context.Context, userID int64, limit int) ([]domain.TopTrack, error) {
	if limit <= 0 {
		limit = DefaultTopTracksLimit
	}
	if limit > MaxTopTracksLimit {
		limit = MaxTopTracksLimit
	}

	results, err := s.repo.TopTracks(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top tracks: %w", err)
	}
	return results, nil
}

func (s *service) TopArtists(ctx context.Context, userID int64, limit int) ([]domain.TopArtist, error) {
	if limit <= 0 {
		limit = DefaultTopArtistsLimit
	}

	results, err := s.repo.TopArtists(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top artists: %w", err)
	}
	return results, nil
}
