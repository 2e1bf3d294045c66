package domain

import "time"

// PopularCollection is one row of the global popularity ranking.
// Score is the weighted linear combination of the three counters.
type PopularCollection struct {
	CollectionID   int64
	CollectionType ContextType
	Plays          int64
	Likes          int64
	Adds           int64
	Score          float64
}

// RecentCollection is one row of a user's recently played collections.
type RecentCollection struct {
	CollectionID   int64
	CollectionType ContextType
	LastPlayedAt   time.Time
}

// RecentTrack is one row of a user's recently played tracks. ContextID
// and ContextType come from the most recent play of the track.
type RecentTrack struct {
	TrackID      int64
	ContextID    *int64
	ContextType  ContextType
	LastPlayedAt time.Time
}

// TopTrack is one row of a user's most played tracks.
type TopTrack struct {
	TrackID   int64
	PlayCount int64
}

// TopArtist is one row of a user's most played artists.
type TopArtist struct {
	ArtistID  int64
	PlayCount int64
}
