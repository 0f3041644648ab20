package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"playShelfAPI/internal/types/friend"
	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/platform"
	"playShelfAPI/internal/types/session"
)

// PostgresStore is the alternate SQL backend, same collection contract
// on relational tables.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListGames(ctx context.Context) ([]game.Game, error) {
	query := `
		SELECT
			id,
			name,
			COALESCE(platform_id, '') AS platform_id,
			COALESCE(release_date::text, '') AS release_date,
			COALESCE(purchase_date::text, '') AS purchase_date,
			metacritic_rating,
			COALESCE(cost, 0) AS cost,
			COALESCE(historic_hours, 0) AS historic_hours,
			COALESCE(is_favourite, false) AS is_favourite
		FROM games
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []game.Game
	for rows.Next() {
		var g game.Game
		if err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.PlatformID,
			&g.ReleaseDate,
			&g.PurchaseDate,
			&g.MetacriticRating,
			&g.Cost,
			&g.HistoricHours,
			&g.IsFavourite,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return games, nil
}

func (s *PostgresStore) ListPlatforms(ctx context.Context) ([]platform.Platform, error) {
	query := `SELECT id, name, COALESCE(is_retro, false) FROM platforms`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query platforms: %w", err)
	}
	defer rows.Close()

	var platforms []platform.Platform
	for rows.Next() {
		var p platform.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.IsRetro); err != nil {
			return nil, fmt.Errorf("failed to scan platform row: %w", err)
		}
		platforms = append(platforms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return platforms, nil
}

func (s *PostgresStore) ListFriends(ctx context.Context) ([]friend.Friend, error) {
	query := `SELECT id, name FROM friends`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	var friends []friend.Friend
	for rows.Next() {
		var f friend.Friend
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("failed to scan friend row: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return friends, nil
}

func (s *PostgresStore) ListSessions(ctx context.Context) ([]session.Session, error) {
	query := `
		SELECT id, game_id, start_time, end_time, COALESCE(friend_ids, '{}'::text[])
		FROM sessions
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var sess session.Session
		if err := rows.Scan(&sess.ID, &sess.GameID, &sess.StartTime, &sess.EndTime, &sess.FriendIDs); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return sessions, nil
}

func (s *PostgresStore) CreateGame(ctx context.Context, g game.Game) error {
	query := `
		INSERT INTO games (id, name, platform_id, release_date, purchase_date, metacritic_rating, cost, historic_hours, is_favourite)
		VALUES ($1, $2, $3, NULLIF($4, '')::date, NULLIF($5, '')::date, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		g.ID, g.Name, g.PlatformID, g.ReleaseDate, g.PurchaseDate,
		g.MetacriticRating, g.Cost, g.HistoricHours, g.IsFavourite)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

// Columns a partial game edit may touch. Anything else is rejected
// before it reaches the query text.
var gameUpdateColumns = map[string]bool{
	"name":              true,
	"platform_id":       true,
	"release_date":      true,
	"purchase_date":     true,
	"metacritic_rating": true,
	"cost":              true,
	"historic_hours":    true,
	"is_favourite":      true,
}

func (s *PostgresStore) UpdateGame(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	setParts := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates)+1)
	i := 1
	for column, value := range updates {
		if !gameUpdateColumns[column] {
			return fmt.Errorf("column %q cannot be updated", column)
		}
		placeholder := fmt.Sprintf("$%d", i)
		if column == "release_date" || column == "purchase_date" {
			placeholder = fmt.Sprintf("NULLIF($%d, '')::date", i)
		}
		setParts = append(setParts, fmt.Sprintf("%s = %s", column, placeholder))
		args = append(args, value)
		i++
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE games SET %s WHERE id = $%d", strings.Join(setParts, ", "), i)

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update game %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteGame(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CreatePlatform(ctx context.Context, p platform.Platform) error {
	query := `INSERT INTO platforms (id, name, is_retro) VALUES ($1, $2, $3)`

	if _, err := s.db.Exec(ctx, query, p.ID, p.Name, p.IsRetro); err != nil {
		return fmt.Errorf("failed to insert platform: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateFriend(ctx context.Context, f friend.Friend) error {
	query := `INSERT INTO friends (id, name) VALUES ($1, $2)`

	if _, err := s.db.Exec(ctx, query, f.ID, f.Name); err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateSession(ctx context.Context, sess session.Session) error {
	query := `
		INSERT INTO sessions (id, game_id, start_time, end_time, friend_ids)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query, sess.ID, sess.GameID, sess.StartTime, sess.EndTime, sess.FriendIDs)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteSession(ctx context.Context, id string, startTime time.Time) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1 AND start_time = $2`, id, startTime)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
