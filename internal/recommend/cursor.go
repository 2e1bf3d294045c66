package recommend

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tunestream/analytics/internal/repository"
)

const cursorSeparator = "|"

// EncodeCursor serializes a page position as an opaque ASCII token.
// The payload is "<unix-nanos>|<entity-id>" base64 encoded.
func EncodeCursor(lastPlayedAt time.Time, entityID int64) string {
	payload := fmt.Sprintf("%d%s%d", lastPlayedAt.UTC().UnixNano(), cursorSeparator, entityID)
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// DecodeCursor reverses EncodeCursor. Any structural or parse failure
// returns ok=false, which callers treat as "no cursor": pagination
// silently restarts at the first page. Malformed or stale cursors must
// never fail a request.
func DecodeCursor(token string) (*repository.KeysetCursor, bool) {
	if strings.TrimSpace(token) == "" {
		return nil, false
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}

	parts := strings.Split(string(raw), cursorSeparator)
	if len(parts) != 2 {
		return nil, false
	}

	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, false
	}

	entityID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, false
	}

	return &repository.KeysetCursor{
		LastPlayedAt: time.Unix(0, nanos).UTC(),
		EntityID:     entityID,
	}, true
}
