package recommend

import "time"

// Popularity score weights. The score is a fixed linear formula,
// not a trained model: plays*1.0 + likes*0.5 + adds*0.7.
const (
	PlayWeight = 1.0
	LikeWeight = 0.5
	AddWeight  = 0.7
)

// Limit policy per query. Callers passing limit <= 0 get the default;
// values above the maximum are clamped.
const (
	DefaultPopularLimit = 4

	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

// Popular-collections cache sizing. The ranking is global (one entry per
// distinct limit), so a handful of slots with a short TTL is plenty.
const (
	popularCacheSize = 16
	popularCacheTTL  = 30 * time.Second
)
