package handler

import (
	"net/http"
	"time"

	"github.com/tunestream/analytics/internal/logger"
	"github.com/tunestream/analytics/internal/metrics"
	"github.com/tunestream/analytics/internal/recommend"
)

// PopularCollectionItem is one row of the popular collections response
type PopularCollectionItem struct {
	CollectionID   int64   `json:"collection_id"`
	CollectionType string  `json:"collection_type"`
	Plays          int64   `json:"plays"`
	Likes          int64   `json:"likes"`
	Adds           int64   `json:"adds"`
	Score          float64 `json:"score"`
}

// PopularCollectionsResponse is the response for the popularity query
type PopularCollectionsResponse struct {
	Collections []PopularCollectionItem `json:"collections"`
}

// RecentCollectionItem is one row of the recent collections response
type RecentCollectionItem struct {
	CollectionID   int64     `json:"collection_id"`
	CollectionType string    `json:"collection_type"`
	LastPlayedAt   time.Time `json:"last_played_at"`
}

// RecentCollectionsResponse is one page of recently played collections
type RecentCollectionsResponse struct {
	Collections []RecentCollectionItem `json:"collections"`
	NextCursor  string                 `json:"next_cursor,omitempty"`
}

// RecentTrackItem is one row of the recent tracks response. Context fields
// describe the container of the track's most recent play.
type RecentTrackItem struct {
	TrackID      int64     `json:"track_id"`
	ContextID    *int64    `json:"context_id,omitempty"`
	ContextType  string    `json:"context_type"`
	LastPlayedAt time.Time `json:"last_played_at"`
}

// RecentTracksResponse is one page of recently played tracks
type RecentTracksResponse struct {
	Tracks     []RecentTrackItem `json:"tracks"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// HandleGetPopularCollections handles GET requests for the global popularity ranking
// @Summary Popular collections
// @Description Globally popular albums and playlists by weighted play/like/add score
// @Tags recommendations
// @Produce json
// @Param limit query int false "Maximum rows (default 4)"
// @Success 200 {object} PopularCollectionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /collections/popular [get]
func HandleGetPopularCollections(svc recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit, ok := limitFromQuery(w, r)
		if !ok {
			return
		}

		results, err := svc.PopularCollections(r.Context(), limit)
		if err != nil {
			log.Error("Failed to get popular collections", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		metrics.RankingQueries.WithLabelValues("popular_collections").Inc()

		resp := PopularCollectionsResponse{Collections: make([]PopularCollectionItem, 0, len(results))}
		for _, row := range results {
			resp.Collections = append(resp.Collections, PopularCollectionItem{
				CollectionID:   row.CollectionID,
				CollectionType: collectionTypeLabel(row.CollectionType),
				Plays:          row.Plays,
				Likes:          row.Likes,
				Adds:           row.Adds,
				Score:          row.Score,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetRecentCollections handles GET requests for a user's recently played collections
// @Summary Recent collections
// @Description Recently played albums and playlists for a user, keyset paginated
// @Tags recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Param limit query int false "Page size (default 5, max 50)"
// @Param cursor query string false "Opaque pagination cursor from a previous page"
// @Success 200 {object} RecentCollectionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /users/{userID}/recent-collections [get]
func HandleGetRecentCollections(svc recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}
		limit, ok := limitFromQuery(w, r)
		if !ok {
			return
		}
		cursor := r.URL.Query().Get("cursor")

		page, nextCursor, err := svc.RecentCollections(r.Context(), userID, limit, cursor)
		if err != nil {
			log.Error("Failed to get recent collections", "error", err, "user_id", userID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		metrics.RankingQueries.WithLabelValues("recent_collections").Inc()

		resp := RecentCollectionsResponse{
			Collections: make([]RecentCollectionItem, 0, len(page)),
			NextCursor:  nextCursor,
		}
		for _, row := range page {
			resp.Collections = append(resp.Collections, RecentCollectionItem{
				CollectionID:   row.CollectionID,
				CollectionType: collectionTypeLabel(row.CollectionType),
				LastPlayedAt:   row.LastPlayedAt,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetRecentTracks handles GET requests for a user's recently played tracks
// @Summary Recent tracks
// @Description Recently played tracks for a user with their latest play context, keyset paginated
// @Tags recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Param limit query int false "Page size (default 5, max 50)"
// @Param cursor query string false "Opaque pagination cursor from a previous page"
// @Success 200 {object} RecentTracksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /users/{userID}/recent-tracks [get]
func HandleGetRecentTracks(svc recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}
		limit, ok := limitFromQuery(w, r)
		if !ok {
			return
		}
		cursor := r.URL.Query().Get("cursor")

		page, nextCursor, err := svc.RecentTracks(r.Context(), userID, limit, cursor)
		if err != nil {
			log.Error("Failed to get recent tracks", "error", err, "user_id", userID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		metrics.RankingQueries.WithLabelValues("recent_tracks").Inc()

		resp := RecentTracksResponse{
			Tracks:     make([]RecentTrackItem, 0, len(page)),
			NextCursor: nextCursor,
		}
		for _, row := range page {
			resp.Tracks = append(resp.Tracks, RecentTrackItem{
				TrackID:      row.TrackID,
				ContextID:    row.ContextID,
				ContextType:  collectionTypeLabel(row.ContextType),
				LastPlayedAt: row.LastPlayedAt,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
