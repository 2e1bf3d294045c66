package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tunestream/analytics/internal/logger"
)

// userIDFromPath extracts and parses the {userID} path parameter.
// If the value is missing or not a positive integer, an error response is
// written and ok is false; the handler should return immediately.
func userIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid user id path parameter", "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return 0, false
	}
	return userID, true
}

// limitFromQuery parses the optional ?limit= query parameter. An absent
// parameter yields 0, which the service layer replaces with the query's
// documented default. A present but unparsable value is a client error.
func limitFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid limit query parameter", "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}
