package recommend

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/logger"
	"github.com/tunestream/analytics/internal/repository"
)

// Service answers popularity and recency queries over the event log.
// All operations are stateless request/response calls; the only in-process
// state is a short-lived cache in front of the global popularity scan.
type Service interface {
	// PopularCollections returns the globally top-scored collections.
	PopularCollections(ctx context.Context, limit int) ([]domain.PopularCollection, error)

	// RecentCollections returns one page of the user's recently played
	// collections plus the cursor for the next page ("" when exhausted).
	RecentCollections(ctx context.Context, userID int64, limit int, cursor string) ([]domain.RecentCollection, string, error)

	// RecentTracks returns one page of the user's recently played tracks
	// plus the cursor for the next page ("" when exhausted).
	RecentTracks(ctx context.Context, userID int64, limit int, cursor string) ([]domain.RecentTrack, string, error)
}

type service struct {
	repo         repository.UserEvents
	popularCache *expirable.LRU[int, []domain.PopularCollection]
}

// NewService creates a new recommendation service
func NewService(repo repository.UserEvents) Service {
	return &service{
		repo:         repo,
		popularCache: expirable.NewLRU[int, []domain.PopularCollection](popularCacheSize, nil, popularCacheTTL),
	}
}

func (s *service) PopularCollections(ctx context.Context, limit int) ([]domain.PopularCollection, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	if cached, found := s.popularCache.Get(limit); found {
		logger.FromContext(ctx).Debug("Popular collections served from cache", "limit", limit)
		return cached, nil
	}

	weights := repository.PopularityWeights{Play: PlayWeight, Like: LikeWeight, Add: AddWeight}
	results, err := s.repo.PopularCollections(ctx, limit, weights)
	if err != nil {
		return nil, fmt.Errorf("popular collections: %w", err)
	}

	s.popularCache.Add(limit, results)
	return results, nil
}

func (s *service) RecentCollections(ctx context.Context, userID int64, limit int, cursor string) ([]domain.RecentCollection, string, error) {
	limit = clampRecentLimit(limit)
	key, _ := DecodeCursor(cursor)

	// Fetch one extra row to detect whether another page exists.
	rows, err := s.repo.RecentCollections(ctx, userID, limit+1, key)
	if err != nil {
		return nil, "", fmt.Errorf("recent collections: %w", err)
	}

	nextCursor := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = EncodeCursor(last.LastPlayedAt, last.CollectionID)
	}

	return rows, nextCursor, nil
}

func (s *service) RecentTracks(ctx context.Context, userID int64, limit int, cursor string) ([]domain.RecentTrack, string, error) {
	limit = clampRecentLimit(limit)
	key, _ := DecodeCursor(cursor)

	rows, err := s.repo.RecentTracks(ctx, userID, limit+1, key)
	if err != nil {
		return nil, "", fmt.Errorf("recent tracks: %w", err)
	}

	nextCursor := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = EncodeCursor(last.LastPlayedAt, last.TrackID)
	}

	return rows, nextCursor, nil
}

func clampRecentLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}
