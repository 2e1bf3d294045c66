package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tunestream/analytics/internal/analytics"
	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/logger"
)

// AddEventRequest represents a request to append one user activity event.
// Optional identifiers of zero or below are treated as absent rather than
// rejected; unknown enum values collapse to the Unknown variant.
type AddEventRequest struct {
	UserID      int64     `json:"user_id" validate:"required,gt=0"`
	TrackID     int64     `json:"track_id,omitempty"`
	EventType   int       `json:"event_type"`
	ContextType int       `json:"context_type"`
	ContextID   int64     `json:"context_id,omitempty"`
	PositionMs  int32     `json:"position_ms,omitempty"`
	DurationMs  int32     `json:"duration_ms,omitempty"`
	Timestamp   time.Time `json:"timestamp_utc" validate:"required"`
	Payload     string    `json:"payload,omitempty"`
}

// HandleAddEvent handles POST requests to append a user event
// @Summary Record user event
// @Description Append one user activity event to the event log
// @Tags events
// @Accept json
// @Produce json
// @Param request body AddEventRequest true "Event details"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /events [post]
func HandleAddEvent(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode add event request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid add event request", "error", err)
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		event := domain.UserEvent{
			UserID:       req.UserID,
			TrackID:      optionalID(req.TrackID),
			EventType:    domain.EventTypeFromInt(req.EventType),
			ContextType:  domain.ContextTypeFromInt(req.ContextType),
			ContextID:    optionalID(req.ContextID),
			PositionMs:   optionalMs(req.PositionMs),
			DurationMs:   optionalMs(req.DurationMs),
			TimestampUTC: req.Timestamp,
			PayloadJSON:  optionalString(req.Payload),
		}

		if err := svc.RecordEvent(r.Context(), event); err != nil {
			log.Error("Failed to record event", "error", err, "user_id", req.UserID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Success: true})
	}
}

// optionalID maps non-positive identifiers to absent. Unparsable or
// missing optional ids never fail the request.
func optionalID(v int64) *int64 {
	if v <= 0 {
		return nil
	}
	return &v
}

// optionalMs maps non-positive millisecond values to absent. A proto-style
// zero means the field was never set.
func optionalMs(v int32) *int32 {
	if v <= 0 {
		return nil
	}
	return &v
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
