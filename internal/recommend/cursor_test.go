package recommend

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		entityID int64
	}{
		{"typical", time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC), 42},
		{"epoch", time.Unix(0, 0).UTC(), 1},
		{"large id", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), 1<<62 - 1},
		{"non-utc input normalizes", time.Date(2026, 6, 1, 12, 0, 0, 0, time.FixedZone("X", 3*3600)), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := EncodeCursor(tt.ts, tt.entityID)

			got, ok := DecodeCursor(token)
			require.True(t, ok)
			assert.True(t, got.LastPlayedAt.Equal(tt.ts), "timestamp survives the round trip")
			assert.Equal(t, time.UTC, got.LastPlayedAt.Location())
			assert.Equal(t, tt.entityID, got.EntityID)
		})
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"not base64", "%%%not-base64%%%"},
		{"no separator", base64.StdEncoding.EncodeToString([]byte("123456789"))},
		{"too many fields", base64.StdEncoding.EncodeToString([]byte("1|2|3"))},
		{"non-numeric timestamp", base64.StdEncoding.EncodeToString([]byte("soon|42"))},
		{"non-numeric id", base64.StdEncoding.EncodeToString([]byte("1700000000000000000|abc"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor, ok := DecodeCursor(tt.token)
			assert.False(t, ok)
			assert.Nil(t, cursor)
		})
	}
}
