// Package memory provides an in-memory implementation of the UserEvents
// contract with the same filtering, grouping and ordering semantics as the
// PostgreSQL adapter. It backs integration-style unit tests and local
// development without a database.
package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/repository"
)

type collectionKey struct {
	contextID   int64
	contextType domain.ContextType
}

// Repository is a stateful in-memory UserEvents implementation.
type Repository struct {
	mu     sync.RWMutex
	events []domain.UserEvent
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{}
}

// Add appends one event.
func (r *Repository) Add(ctx context.Context, event domain.UserEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Len reports the number of stored events.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// PopularCollections implements the global weighted popularity ranking.
func (r *Repository) PopularCollections(ctx context.Context, limit int, weights repository.PopularityWeights) ([]domain.PopularCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	counters := make(map[collectionKey]*domain.PopularCollection)
	for _, e := range r.events {
		if e.ContextID == nil || !e.ContextType.IsCollection() {
			continue
		}
		key := collectionKey{contextID: *e.ContextID, contextType: e.ContextType}
		row, ok := counters[key]
		if !ok {
			row = &domain.PopularCollection{CollectionID: key.contextID, CollectionType: key.contextType}
			counters[key] = row
		}
		switch e.EventType {
		case domain.EventPlayStart:
			row.Plays++
		case domain.EventLike:
			row.Likes++
		case domain.EventAddToPlaylist:
			row.Adds++
		}
	}

	results := make([]domain.PopularCollection, 0, len(counters))
	for _, row := range counters {
		row.Score = float64(row.Plays)*weights.Play + float64(row.Likes)*weights.Like + float64(row.Adds)*weights.Add
		results = append(results, *row)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Plays > results[j].Plays
	})

	return truncate(results, limit), nil
}

// RecentCollections implements latest-play-per-collection with keyset pagination.
func (r *Repository) RecentCollections(ctx context.Context, userID int64, limit int, cursor *repository.KeysetCursor) ([]domain.RecentCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[collectionKey]time.Time)
	for _, e := range r.events {
		if e.UserID != userID || e.EventType != domain.EventPlayStart || e.ContextID == nil || !e.ContextType.IsCollection() {
			continue
		}
		key := collectionKey{contextID: *e.ContextID, contextType: e.ContextType}
		if ts, ok := latest[key]; !ok || e.TimestampUTC.After(ts) {
			latest[key] = e.TimestampUTC
		}
	}

	results := make([]domain.RecentCollection, 0, len(latest))
	for key, ts := range latest {
		if cursor != nil && !afterCursor(ts, key.contextID, cursor) {
			continue
		}
		results = append(results, domain.RecentCollection{
			CollectionID:   key.contextID,
			CollectionType: key.contextType,
			LastPlayedAt:   ts,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if !results[i].LastPlayedAt.Equal(results[j].LastPlayedAt) {
			return results[i].LastPlayedAt.After(results[j].LastPlayedAt)
		}
		return results[i].CollectionID > results[j].CollectionID
	})

	return truncate(results, limit), nil
}

// RecentTracks implements latest-play-per-track with context carry-forward.
// Among events sharing a track's maximum timestamp, the one with the larger
// event id wins.
func (r *Repository) RecentTracks(ctx context.Context, userID int64, limit int, cursor *repository.KeysetCursor) ([]domain.RecentTrack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[int64]domain.UserEvent)
	for _, e := range r.events {
		if e.UserID != userID || e.EventType != domain.EventPlayStart || e.TrackID == nil || *e.TrackID <= 0 {
			continue
		}
		current, ok := latest[*e.TrackID]
		if !ok || laterEvent(e, current) {
			latest[*e.TrackID] = e
		}
	}

	results := make([]domain.RecentTrack, 0, len(latest))
	for trackID, e := range latest {
		if cursor != nil && !afterCursor(e.TimestampUTC, trackID, cursor) {
			continue
		}
		results = append(results, domain.RecentTrack{
			TrackID:      trackID,
			ContextID:    e.ContextID,
			ContextType:  e.ContextType,
			LastPlayedAt: e.TimestampUTC,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if !results[i].LastPlayedAt.Equal(results[j].LastPlayedAt) {
			return results[i].LastPlayedAt.After(results[j].LastPlayedAt)
		}
		return results[i].TrackID > results[j].TrackID
	})

	return truncate(results, limit), nil
}

// TopTracks implements per-track play counting.
func (r *Repository) TopTracks(ctx context.Context, userID int64, limit int) ([]domain.TopTrack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[int64]int64)
	for _, e := range r.events {
		if e.UserID != userID || e.EventType != domain.EventPlayStart || e.TrackID == nil || *e.TrackID <= 0 {
			continue
		}
		counts[*e.TrackID]++
	}

	results := make([]domain.TopTrack, 0, len(counts))
	for trackID, count := range counts {
		results = append(results, domain.TopTrack{TrackID: trackID, PlayCount: count})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].PlayCount != results[j].PlayCount {
			return results[i].PlayCount > results[j].PlayCount
		}
		return results[i].TrackID > results[j].TrackID
	})

	return truncate(results, limit), nil
}

// TopArtists implements per-artist play counting. The artist id is read
// from the "artist_id" field of the event payload; events without a
// numeric artist id are skipped.
func (r *Repository) TopArtists(ctx context.Context, userID int64, limit int) ([]domain.TopArtist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[int64]int64)
	for _, e := range r.events {
		if e.UserID != userID || e.EventType != domain.EventPlayStart {
			continue
		}
		artistID, ok := artistIDFromPayload(e.PayloadJSON)
		if !ok {
			continue
		}
		counts[artistID]++
	}

	results := make([]domain.TopArtist, 0, len(counts))
	for artistID, count := range counts {
		results = append(results, domain.TopArtist{ArtistID: artistID, PlayCount: count})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].PlayCount != results[j].PlayCount {
			return results[i].PlayCount > results[j].PlayCount
		}
		return results[i].ArtistID > results[j].ArtistID
	})

	return truncate(results, limit), nil
}

// afterCursor reports whether a row at (ts, entityID) comes strictly after
// the cursor position in descending (timestamp, entity id) order.
func afterCursor(ts time.Time, entityID int64, cursor *repository.KeysetCursor) bool {
	if ts.Before(cursor.LastPlayedAt) {
		return true
	}
	return ts.Equal(cursor.LastPlayedAt) && entityID < cursor.EntityID
}

// laterEvent reports whether a should replace b as the latest event:
// later timestamp wins, equal timestamps fall back to the larger event id.
func laterEvent(a, b domain.UserEvent) bool {
	if !a.TimestampUTC.Equal(b.TimestampUTC) {
		return a.TimestampUTC.After(b.TimestampUTC)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) > 0
}

func artistIDFromPayload(payload *string) (int64, bool) {
	if payload == nil {
		return 0, false
	}
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(*payload), &fields); err != nil {
		return 0, false
	}
	switch v := fields["artist_id"].(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
