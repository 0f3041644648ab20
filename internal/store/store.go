// Package store provides the item store behind the library: four
// collections (games, sessions, platforms, friends) accessed by full
// scan plus create/update/delete by key. Two backends implement the
// same contract, a Firestore document store and a Postgres database.
package store

import (
	"context"
	"errors"
	"time"

	"playShelfAPI/internal/types/friend"
	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/platform"
	"playShelfAPI/internal/types/session"
)

// ErrNotFound reports that the addressed item does not exist.
var ErrNotFound = errors.New("item not found")

// Store is the item-store contract. List calls always return the full
// collection; there is no pagination or incremental sync.
type Store interface {
	ListGames(ctx context.Context) ([]game.Game, error)
	ListPlatforms(ctx context.Context) ([]platform.Platform, error)
	ListFriends(ctx context.Context) ([]friend.Friend, error)
	ListSessions(ctx context.Context) ([]session.Session, error)

	CreateGame(ctx context.Context, g game.Game) error
	// UpdateGame applies a partial edit. Keys are column/field names in
	// the storage contract (name, platform_id, release_date, ...).
	UpdateGame(ctx context.Context, id string, updates map[string]any) error
	DeleteGame(ctx context.Context, id string) error

	CreatePlatform(ctx context.Context, p platform.Platform) error
	CreateFriend(ctx context.Context, f friend.Friend) error

	CreateSession(ctx context.Context, s session.Session) error
	// DeleteSession addresses a session by its composite key of id and
	// start time.
	DeleteSession(ctx context.Context, id string, startTime time.Time) error

	Ping(ctx context.Context) error
	Close() error
}
