package services

import (
	"context"
	"time"

	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/friend"
	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/platform"
	"playShelfAPI/internal/types/session"
)

// fakeStore is an in-memory Store for service tests. Reads serve the
// seeded slices; writes are recorded for assertions.
type fakeStore struct {
	games     []game.Game
	platforms []platform.Platform
	friends   []friend.Friend
	sessions  []session.Session

	gamesErr    error
	sessionsErr error

	createdGames    []game.Game
	createdSessions []session.Session
	updates         map[string]map[string]any
	deletedGames    []string
	deletedSessions []string
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) ListGames(ctx context.Context) ([]game.Game, error) {
	return f.games, f.gamesErr
}

func (f *fakeStore) ListPlatforms(ctx context.Context) ([]platform.Platform, error) {
	return f.platforms, nil
}

func (f *fakeStore) ListFriends(ctx context.Context) ([]friend.Friend, error) {
	return f.friends, nil
}

func (f *fakeStore) ListSessions(ctx context.Context) ([]session.Session, error) {
	return f.sessions, f.sessionsErr
}

func (f *fakeStore) CreateGame(ctx context.Context, g game.Game) error {
	f.createdGames = append(f.createdGames, g)
	return nil
}

func (f *fakeStore) UpdateGame(ctx context.Context, id string, updates map[string]any) error {
	if f.updates == nil {
		f.updates = map[string]map[string]any{}
	}
	f.updates[id] = updates
	return nil
}

func (f *fakeStore) DeleteGame(ctx context.Context, id string) error {
	f.deletedGames = append(f.deletedGames, id)
	return nil
}

func (f *fakeStore) CreatePlatform(ctx context.Context, p platform.Platform) error {
	f.platforms = append(f.platforms, p)
	return nil
}

func (f *fakeStore) CreateFriend(ctx context.Context, fr friend.Friend) error {
	f.friends = append(f.friends, fr)
	return nil
}

func (f *fakeStore) CreateSession(ctx context.Context, s session.Session) error {
	f.createdSessions = append(f.createdSessions, s)
	return nil
}

func (f *fakeStore) DeleteSession(ctx context.Context, id string, startTime time.Time) error {
	f.deletedSessions = append(f.deletedSessions, id)
	return nil
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) Close() error { return nil }
