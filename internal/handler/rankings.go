package handler

import (
	"net/http"

	"github.com/tunestream/analytics/internal/analytics"
	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/logger"
	"github.com/tunestream/analytics/internal/metrics"
)

// TopTrackItem is one row of the top tracks response
type TopTrackItem struct {
	TrackID   int64 `json:"track_id"`
	PlayCount int64 `json:"play_count"`
}

// TopArtistItem is one row of the top artists response
type TopArtistItem struct {
	ArtistID  int64 `json:"artist_id"`
	PlayCount int64 `json:"play_count"`
}

// TopTracksResponse is the response for the top tracks query
type TopTracksResponse struct {
	Tracks []TopTrackItem `json:"tracks"`
}

// TopArtistsResponse is the response for the top artists query
type TopArtistsResponse struct {
	Artists []TopArtistItem `json:"artists"`
}

// HandleGetTopTracks handles GET requests for a user's most played tracks
// @Summary Top tracks
// @Description Most played tracks for a user, ordered by play count desc, track id desc
// @Tags rankings
// @Produce json
// @Param userID path int true "User ID"
// @Param limit query int false "Maximum rows (default 10, max 100)"
// @Success 200 {object} TopTracksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /users/{userID}/top-tracks [get]
func HandleGetTopTracks(svc analytics.Service) http.HandlerFunc {
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

		results, err := svc.TopTracks(r.Context(), userID, limit)
		if err != nil {
			log.Error("Failed to get top tracks", "error", err, "user_id", userID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		metrics.RankingQueries.WithLabelValues("top_tracks").Inc()

		resp := TopTracksResponse{Tracks: make([]TopTrackItem, 0, len(results))}
		for _, row := range results {
			resp.Tracks = append(resp.Tracks, TopTrackItem{TrackID: row.TrackID, PlayCount: row.PlayCount})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetTopArtists handles GET requests for a user's most played artists
// @Summary Top artists
// @Description Most played artists for a user, ordered by play count desc, artist id desc
// @Tags rankings
// @Produce json
// @Param userID path int true "User ID"
// @Param limit query int false "Maximum rows (default 5)"
// @Success 200 {object} TopArtistsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /users/{userID}/top-artists [get]
func HandleGetTopArtists(svc analytics.Service) http.HandlerFunc {
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

		results, err := svc.TopArtists(r.Context(), userID, limit)
		if err != nil {
			log.Error("Failed to get top artists", "error", err, "user_id", userID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		metrics.RankingQueries.WithLabelValues("top_artists").Inc()

		resp := TopArtistsResponse{Artists: make([]TopArtistItem, 0, len(results))}
		for _, row := range results {
			resp.Artists = append(resp.Artists, TopArtistItem{ArtistID: row.ArtistID, PlayCount: row.PlayCount})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// collectionTypeLabel renders a context type for responses.
func collectionTypeLabel(t domain.ContextType) string {
	return t.String()
}
