package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a user activity event. The zero value is
// EventUnknown so that unrecognized wire values decode safely instead
// of failing the request.
type EventType int

const (
	EventUnknown EventType = iota
	EventPlayStart
	EventPlayFinish
	EventSkip
	EventLike
	EventAddToPlaylist
	EventSearch
)

// String returns a stable lowercase name for logging and metrics labels.
func (t EventType) String() string {
	switch t {
	case EventPlayStart:
		return "play_start"
	case EventPlayFinish:
		return "play_finish"
	case EventSkip:
		return "skip"
	case EventLike:
		return "like"
	case EventAddToPlaylist:
		return "add_to_playlist"
	case EventSearch:
		return "search"
	default:
		return "unknown"
	}
}

// EventTypeFromInt maps a wire integer to an EventType. Values outside
// the known range collapse to EventUnknown.
func EventTypeFromInt(v int) EventType {
	if v < int(EventUnknown) || v > int(EventSearch) {
		return EventUnknown
	}
	return EventType(v)
}

// ContextType identifies the kind of container an event occurred within.
type ContextType int

const (
	ContextUnknown ContextType = iota
	ContextTrack
	ContextPlaylist
	ContextAlbum
	ContextRadio
	ContextSearch
)

// String returns a stable lowercase name for logging and responses.
func (t ContextType) String() string {
	switch t {
	case ContextTrack:
		return "track"
	case ContextPlaylist:
		return "playlist"
	case ContextAlbum:
		return "album"
	case ContextRadio:
		return "radio"
	case ContextSearch:
		return "search"
	default:
		return "unknown"
	}
}

// ContextTypeFromInt maps a wire integer to a ContextType. Values outside
// the known range collapse to ContextUnknown.
func ContextTypeFromInt(v int) ContextType {
	if v < int(ContextUnknown) || v > int(ContextSearch) {
		return ContextUnknown
	}
	return ContextType(v)
}

// IsCollection reports whether the context type is eligible for
// popularity and recency ranking (albums and playlists only).
func (t ContextType) IsCollection() bool {
	return t == ContextAlbum || t == ContextPlaylist
}

// UserEvent is one row of the append-only activity log. Events are
// immutable once persisted; corrections are modeled as new events.
type UserEvent struct {
	ID           uuid.UUID
	UserID       int64
	TrackID      *int64
	EventType    EventType
	ContextType  ContextType
	ContextID    *int64
	PositionMs   *int32
	DurationMs   *int32
	TimestampUTC time.Time
	PayloadJSON  *string
}
