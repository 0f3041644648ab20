package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/session"
)

func TestListSessions_NewestFirstWithGameNames(t *testing.T) {
	fs := &fakeStore{
		games: []game.Game{{ID: "1", Name: "Hades"}},
		sessions: []session.Session{
			{ID: "old", GameID: "1",
				StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)},
			{ID: "new", GameID: "gone",
				StartTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewSessionService(fs)

	sessions, err := svc.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "new", sessions[0].ID)
	assert.Equal(t, "Unknown Game", sessions[0].GameName)
	assert.Equal(t, "02:00", sessions[0].Duration)
	assert.Equal(t, "Hades", sessions[1].GameName)
}

func TestCreateSession_Validation(t *testing.T) {
	svc := NewSessionService(&fakeStore{})
	now := time.Now()

	_, err := svc.CreateSession(context.Background(), &session.CreateSessionRequest{
		StartTime: now, EndTime: now.Add(time.Hour),
	})
	assert.Error(t, err, "missing game id")

	_, err = svc.CreateSession(context.Background(), &session.CreateSessionRequest{
		GameID: "1", StartTime: now,
	})
	assert.Error(t, err, "missing end time")
}

// An inverted range is accepted here; the stats engine propagates the
// negative duration.
func TestCreateSession_InvertedRangeStored(t *testing.T) {
	fs := &fakeStore{}
	svc := NewSessionService(fs)
	now := time.Now()

	created, err := svc.CreateSession(context.Background(), &session.CreateSessionRequest{
		GameID:    "1",
		StartTime: now,
		EndTime:   now.Add(-2 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.FriendIDs)
	require.Len(t, fs.createdSessions, 1)
}

func TestDeleteSession(t *testing.T) {
	fs := &fakeStore{}
	svc := NewSessionService(fs)

	require.NoError(t, svc.DeleteSession(context.Background(), "s1", time.Now()))
	assert.Equal(t, []string{"s1"}, fs.deletedSessions)
}
