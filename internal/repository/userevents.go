package repository

import (
	"context"
	"time"

	"github.com/tunestream/analytics/internal/domain"
)

// PopularityWeights are the multipliers applied to per-collection counters
// when computing the weighted popularity score.
type PopularityWeights struct {
	Play float64
	Like float64
	Add  float64
}

// KeysetCursor identifies the last row of a previously returned page.
// Scans resume strictly after this position in descending
// (timestamp, entity id) order.
type KeysetCursor struct {
	LastPlayedAt time.Time
	EntityID     int64
}

// UserEvents defines the storage contract for the append-only event log.
// All scans are read-only and must produce deterministic ordering within
// one call; no cross-call transactional isolation is required.
type UserEvents interface {
	// Add appends one event. The caller supplies a unique id; the row is
	// immutable afterwards.
	Add(ctx context.Context, event domain.UserEvent) error

	// PopularCollections groups album/playlist events globally, scores
	// each collection with the given weights and returns the top rows
	// ordered by score desc, plays desc.
	PopularCollections(ctx context.Context, limit int, weights PopularityWeights) ([]domain.PopularCollection, error)

	// RecentCollections returns the user's collections ordered by latest
	// play desc, collection id desc, resuming after cursor when non-nil.
	RecentCollections(ctx context.Context, userID int64, limit int, cursor *KeysetCursor) ([]domain.RecentCollection, error)

	// RecentTracks returns the user's tracks ordered by latest play desc,
	// track id desc, each row carrying the context of the most recent
	// play (ties on timestamp broken by max event id).
	RecentTracks(ctx context.Context, userID int64, limit int, cursor *KeysetCursor) ([]domain.RecentTrack, error)

	// TopTracks returns the user's tracks ordered by play count desc,
	// track id desc.
	TopTracks(ctx context.Context, userID int64, limit int) ([]domain.TopTrack, error)

	// TopArtists returns the user's artists ordered by play count desc,
	// artist id desc. The artist identifier is carried in the event
	// payload under "artist_id".
	TopArtists(ctx context.Context, userID int64, limit int) ([]domain.TopArtist, error)
}
