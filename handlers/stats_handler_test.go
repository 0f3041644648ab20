package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/friend"
	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/platform"
	"playShelfAPI/internal/types/session"
	"playShelfAPI/middleware"
	"playShelfAPI/services"
)

// stubStore serves fixed snapshots; writes are not exercised by the
// stats endpoint.
type stubStore struct {
	games    []game.Game
	sessions []session.Session
}

var _ store.Store = (*stubStore)(nil)

func (s *stubStore) ListGames(ctx context.Context) ([]game.Game, error)       { return s.games, nil }
func (s *stubStore) ListSessions(ctx context.Context) ([]session.Session, error) {
	return s.sessions, nil
}
func (s *stubStore) ListPlatforms(ctx context.Context) ([]platform.Platform, error) {
	return nil, nil
}
func (s *stubStore) ListFriends(ctx context.Context) ([]friend.Friend, error) { return nil, nil }
func (s *stubStore) CreateGame(ctx context.Context, g game.Game) error        { return nil }
func (s *stubStore) UpdateGame(ctx context.Context, id string, updates map[string]any) error {
	return nil
}
func (s *stubStore) DeleteGame(ctx context.Context, id string) error              { return nil }
func (s *stubStore) CreatePlatform(ctx context.Context, p platform.Platform) error { return nil }
func (s *stubStore) CreateFriend(ctx context.Context, f friend.Friend) error      { return nil }
func (s *stubStore) CreateSession(ctx context.Context, sess session.Session) error {
	return nil
}
func (s *stubStore) DeleteSession(ctx context.Context, id string, startTime time.Time) error {
	return nil
}
func (s *stubStore) Ping(ctx context.Context) error { return nil }
func (s *stubStore) Close() error                   { return nil }

func newStatsRequest(t *testing.T, target string, authenticated bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authenticated {
		ctx := context.WithValue(req.Context(), middleware.ClerkIDKey, "user_test")
		req = req.WithContext(ctx)
	}
	return req
}

func testStatsHandler() *StatsHandler {
	st := &stubStore{
		games: []game.Game{
			{ID: "1", Name: "Chrono Trigger", Cost: 0, HistoricHours: 40},
		},
		sessions: []session.Session{
			{ID: "s1", GameID: "1",
				StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		},
	}
	return NewStatsHandler(services.NewStatsService(st))
}

func TestGetStats_Unauthenticated(t *testing.T) {
	h := testStatsHandler()

	rr := httptest.NewRecorder()
	h.GetStats(rr, newStatsRequest(t, "/api/v1/stats", false))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetStats_OK(t *testing.T) {
	h := testStatsHandler()

	rr := httptest.NewRecorder()
	h.GetStats(rr, newStatsRequest(t, "/api/v1/stats?include_historic=true", true))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp services.StatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Contains(t, resp.GameStats, "Chrono Trigger")
	assert.Equal(t, 42.0, resp.GameStats["Chrono Trigger"].Hours)
	assert.Equal(t, 1, resp.Totals.GameCount)
}

func TestGetStats_RangeExcludes(t *testing.T) {
	h := testStatsHandler()

	rr := httptest.NewRecorder()
	h.GetStats(rr, newStatsRequest(t, "/api/v1/stats?start_date=2024-02-01", true))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp services.StatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.GameStats)
	assert.Equal(t, 0, resp.Totals.GameCount)
}

func TestGetStats_BadDate(t *testing.T) {
	h := testStatsHandler()

	rr := httptest.NewRecorder()
	h.GetStats(rr, newStatsRequest(t, "/api/v1/stats?start_date=01-02-2024", true))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetStats_BadToggle(t *testing.T) {
	h := testStatsHandler()

	rr := httptest.NewRecorder()
	h.GetStats(rr, newStatsRequest(t, "/api/v1/stats?include_historic=maybe", true))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
