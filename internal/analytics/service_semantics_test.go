package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunestream/analytics/internal/domain"
	"github.com/tunestream/analytics/internal/repository/memory"
)

// Integration-style tests against the in-memory repository, which mirrors
// the SQL adapter's filtering and ordering.

func recordPlay(t *testing.T, svc Service, userID, trackID int64, ts time.Time, payload *string) {
	t.Helper()
	err := svc.RecordEvent(context.Background(), domain.UserEvent{
		UserID:       userID,
		TrackID:      &trackID,
		EventType:    domain.EventPlayStart,
		TimestampUTC: ts,
		PayloadJSON:  payload,
	})
	require.NoError(t, err)
}

func TestTopTracks_OrdersByPlayCount(t *testing.T) {
	repo := memory.New()
	svc := NewService(repo)
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	const userID = int64(11)
	for i := 0; i < 3; i++ {
		recordPlay(t, svc, userID, 100, base.Add(time.Duration(i)*time.Minute), nil)
	}
	recordPlay(t, svc, userID, 200, base, nil)
	recordPlay(t, svc, userID, 200, base.Add(time.Hour), nil)
	recordPlay(t, svc, userID, 300, base, nil)
	// Other users and non-play events do not count.
	recordPlay(t, svc, 99, 100, base, nil)
	track := int64(100)
	require.NoError(t, svc.RecordEvent(context.Background(), domain.UserEvent{
		UserID: userID, TrackID: &track, EventType: domain.EventSkip, TimestampUTC: base,
	}))

	results, err := svc.TopTracks(context.Background(), userID, 10)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, domain.TopTrack{TrackID: 100, PlayCount: 3}, results[0])
	assert.Equal(t, domain.TopTrack{TrackID: 200, PlayCount: 2}, results[1])
	assert.Equal(t, domain.TopTrack{TrackID: 300, PlayCount: 1}, results[2])
}

func TestTopTracks_CountTiesResolveByLargerTrackID(t *testing.T) {
	repo := memory.New()
	svc := NewService(repo)
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	const userID = int64(11)
	recordPlay(t, svc, userID, 100, base, nil)
	recordPlay(t, svc, userID, 200, base.Add(time.Minute), nil)

	results, err := svc.TopTracks(context.Background(), userID, 1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, int64(200), results[0].TrackID)
}

func TestTopArtists_CountsPlaysByPayloadArtist(t *testing.T) {
	repo := memory.New()
	svc := NewService(repo)
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	const userID = int64(11)
	artist := func(id int64) *string {
		s := fmt.Sprintf(`{"artist_id": %d}`, id)
		return &s
	}
	recordPlay(t, svc, userID, 1, base, artist(500))
	recordPlay(t, svc, userID, 2, base, artist(500))
	recordPlay(t, svc, userID, 3, base, artist(600))
	// Plays without a usable artist id are skipped.
	recordPlay(t, svc, userID, 4, base, nil)
	junk := `{"artist_id": "not-a-number"}`
	recordPlay(t, svc, userID, 5, base, &junk)

	results, err := svc.TopArtists(context.Background(), userID, 10)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, domain.TopArtist{ArtistID: 500, PlayCount: 2}, results[0])
	assert.Equal(t, domain.TopArtist{ArtistID: 600, PlayCount: 1}, results[1])
}

func TestTopArtists_AcceptsStringArtistIDs(t *testing.T) {
	repo := memory.New()
	svc := NewService(repo)
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	payload := `{"artist_id": "700"}`
	recordPlay(t, svc, 11, 1, base, &payload)

	results, err := svc.TopArtists(context.Background(), 11, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(700), results[0].ArtistID)
}
