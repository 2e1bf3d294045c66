package analytics

// Limit policy for frequency rankings. Callers passing limit <= 0 get the
// default; track queries above the maximum are clamped. The artist query
// carries no maximum.
const (
	DefaultTopTracksLimit = 10
	MaxTopTracksLimit     = 100

	DefaultTopArtistsLimit = 5
)
