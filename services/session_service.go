package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"playShelfAPI/internal/stats"
	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/session"
)

type SessionService struct {
	store store.Store
}

func NewSessionService(store store.Store) *SessionService {
	return &SessionService{store: store}
}

// ListSessions returns every session with its game name and rendered
// duration, newest first.
func (s *SessionService) ListSessions(ctx context.Context) ([]session.WithGame, error) {
	games, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	merged := stats.MergeSessionsWithGames(games, sessions)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].StartTime.After(merged[j].StartTime)
	})
	return merged, nil
}

// CreateSession records a play session. An end time before the start
// time is stored as-is; the stats engine propagates the negative
// duration instead of rejecting it here.
func (s *SessionService) CreateSession(ctx context.Context, req *session.CreateSessionRequest) (*session.Session, error) {
	if req.GameID == "" {
		return nil, fmt.Errorf("game is required")
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("start and end time are required")
	}

	friendIDs := req.FriendIDs
	if friendIDs == nil {
		friendIDs = []string{}
	}

	sess := session.Session{
		ID:        uuid.NewString(),
		GameID:    req.GameID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		FriendIDs: friendIDs,
	}

	if err := s.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, id string, startTime time.Time) error {
	return s.store.DeleteSession(ctx, id, startTime)
}
