package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/repository"
)

type userEventsRepository struct {
	db *pgxpool.Pool
}

// NewUserEventsRepository creates a new PostgreSQL user events repository
func NewUserEventsRepository(db *pgxpool.Pool) repository.UserEvents {
	return &userEventsRepository{db: db}
}

// Add appends one immutable event row
func (r *userEventsRepository) Add(ctx context.Context, event domain.UserEvent) error {
	query := `
		INSERT INTO user_events (id, user_id, track_id, event_type, context_type, context_id, position_ms, duration_ms, timestamp_utc, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.TrackID,
		int(event.EventType),
		int(event.ContextType),
		event.ContextID,
		event.PositionMs,
		event.DurationMs,
		event.TimestampUTC,
		event.PayloadJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user event: %w", err)
	}
	return nil
}

// PopularCollections computes the global weighted popularity ranking in a
// single grouped query. Score and counters are produced by the database so
// the event log is never materialized in process memory.
func (r *userEventsRepository) PopularCollections(ctx context.Context, limit int, weights repository.PopularityWeights) ([]domain.PopularCollection, error) {
	query := `
		SELECT context_id, context_type,
		       COUNT(*) FILTER (WHERE event_type = $1) AS plays,
		       COUNT(*) FILTER (WHERE event_type = $2) AS likes,
		       COUNT(*) FILTER (WHERE event_type = $3) AS adds,
		       (COUNT(*) FILTER (WHERE event_type = $1))::float8 * $4 +
		       (COUNT(*) FILTER (WHERE event_type = $2))::float8 * $5 +
		       (COUNT(*) FILTER (WHERE event_type = $3))::float8 * $6 AS score
		FROM user_events
		WHERE context_id IS NOT NULL AND context_type IN ($7, $8)
		GROUP BY context_id, context_type
		ORDER BY score DESC, plays DESC
		LIMIT $9
	`

	rows, err := r.db.Query(ctx, query,
		int(domain.EventPlayStart),
		int(domain.EventLike),
		int(domain.EventAddToPlaylist),
		weights.Play,
		weights.Like,
		weights.Add,
		int(domain.ContextAlbum),
		int(domain.ContextPlaylist),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular collections: %w", err)
	}
	defer rows.Close()

	var results []domain.PopularCollection
	for rows.Next() {
		var row domain.PopularCollection
		var contextType int
		if err := rows.Scan(&row.CollectionID, &contextType, &row.Plays, &row.Likes, &row.Adds, &row.Score); err != nil {
			return nil, fmt.Errorf("failed to scan popular collection: %w", err)
		}
		row.CollectionType = domain.ContextTypeFromInt(contextType)
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read popular collections: %w", err)
	}
	return results, nil
}

// RecentCollections returns the latest play per collection for one user,
// ordered for keyset pagination. The cursor predicate lives in HAVING
// because it constrains the grouped MAX, not individual rows.
func (r *userEventsRepository) RecentCollections(ctx context.Context, userID int64, limit int, cursor *repository.KeysetCursor) ([]domain.RecentCollection, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT context_id, context_type, MAX(timestamp_utc) AS last_played_at
		FROM user_events
		WHERE user_id = $1 AND event_type = $2 AND context_id IS NOT NULL AND context_type IN ($3, $4)
		GROUP BY context_id, context_type`)

	args := []interface{}{userID, int(domain.EventPlayStart), int(domain.ContextAlbum), int(domain.ContextPlaylist)}

	if cursor != nil {
		fmt.Fprintf(&queryBuilder, `
		HAVING MAX(timestamp_utc) < $5 OR (MAX(timestamp_utc) = $5 AND context_id < $6)`)
		args = append(args, cursor.LastPlayedAt, cursor.EntityID)
	}

	fmt.Fprintf(&queryBuilder, `
		ORDER BY last_played_at DESC, context_id DESC
		LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent collections: %w", err)
	}
	defer rows.Close()

	var results []domain.RecentCollection
	for rows.Next() {
		var row domain.RecentCollection
		var contextType int
		if err := rows.Scan(&row.CollectionID, &contextType, &row.LastPlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent collection: %w", err)
		}
		row.CollectionType = domain.ContextTypeFromInt(contextType)
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent collections: %w", err)
	}
	return results, nil
}

// RecentTracks resolves the single latest play per track, including its
// context. DISTINCT ON with (timestamp_utc DESC, id DESC) expresses the
// "latest event wins, ties broken by max event id" rule in one query.
func (r *userEventsRepository) RecentTracks(ctx context.Context, userID int64, limit int, cursor *repository.KeysetCursor) ([]domain.RecentTrack, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT track_id, context_id, context_type, last_played_at
		FROM (
			SELECT DISTINCT ON (track_id)
			       track_id, context_id, context_type, timestamp_utc AS last_played_at
			FROM user_events
			WHERE user_id = $1 AND event_type = $2 AND track_id IS NOT NULL AND track_id > 0
			ORDER BY track_id, timestamp_utc DESC, id DESC
		) latest`)

	args := []interface{}{userID, int(domain.EventPlayStart)}

	if cursor != nil {
		queryBuilder.WriteString(`
		WHERE last_played_at < $3 OR (last_played_at = $3 AND track_id < $4)`)
		args = append(args, cursor.LastPlayedAt, cursor.EntityID)
	}

	fmt.Fprintf(&queryBuilder, `
		ORDER BY last_played_at DESC, track_id DESC
		LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent tracks: %w", err)
	}
	defer rows.Close()

	return scanRecentTracks(rows)
}

// TopTracks counts plays per track for one user
func (r *userEventsRepository) TopTracks(ctx context.Context, userID int64, limit int) ([]domain.TopTrack, error) {
	query := `
		SELECT track_id, COUNT(*) AS play_count
		FROM user_events
		WHERE user_id = $1 AND event_type = $2 AND track_id IS NOT NULL AND track_id > 0
		GROUP BY track_id
		ORDER BY play_count DESC, track_id DESC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, userID, int(domain.EventPlayStart), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top tracks: %w", err)
	}
	defer rows.Close()

	var results []domain.TopTrack
	for rows.Next() {
		var row domain.TopTrack
		if err := rows.Scan(&row.TrackID, &row.PlayCount); err != nil {
			return nil, fmt.Errorf("failed to scan top track: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top tracks: %w", err)
	}
	return results, nil
}

// TopArtists counts plays per artist for one user. The artist identifier
// rides in the JSONB payload; rows without a numeric artist_id are skipped.
func (r *userEventsRepository) TopArtists(ctx context.Context, userID int64, limit int) ([]domain.TopArtist, error) {
	query := `
		SELECT (payload->>'artist_id')::bigint AS artist_id, COUNT(*) AS play_count
		FROM user_events
		WHERE user_id = $1 AND event_type = $2 AND payload->>'artist_id' ~ '^[0-9]+$'
		GROUP BY artist_id
		ORDER BY play_count DESC, artist_id DESC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, userID, int(domain.EventPlayStart), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top artists: %w", err)
	}
	defer rows.Close()

	var results []domain.TopArtist
	for rows.Next() {
		var row domain.TopArtist
		if err := rows.Scan(&row.ArtistID, &row.PlayCount); err != nil {
			return nil, fmt.Errorf("failed to scan top artist: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top artists: %w", err)
	}
	return results, nil
}

// scanRecentTracks scans rows into RecentTrack structs
func scanRecentTracks(rows pgx.Rows) ([]domain.RecentTrack, error) {
	var results []domain.RecentTrack

	for rows.Next() {
		var row domain.RecentTrack
		var contextType int
		if err := rows.Scan(&row.TrackID, &row.ContextID, &contextType, &row.LastPlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent track: %w", err)
		}
		row.ContextType = domain.ContextTypeFromInt(contextType)
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent tracks: %w", err)
	}

	return results, nil
}
