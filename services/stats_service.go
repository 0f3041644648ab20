package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"playShelfAPI/internal/stats"
	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/session"
)

type StatsService struct {
	store store.Store
}

func NewStatsService(store store.Store) *StatsService {
	return &StatsService{store: store}
}

// StatsRequest carries the two optional inclusive date bounds and the
// historic-hours toggle from the stats view.
type StatsRequest struct {
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeHistoric bool
}

type StatsResponse struct {
	GameStats map[string]stats.GameStat `json:"game_stats"`
	Rows      []stats.Row               `json:"rows"`
	Totals    stats.Totals              `json:"totals"`
}

// GetStats loads full snapshots of games and sessions and runs the
// aggregation pipeline: join, range filter, fold, totals. The two
// snapshots are independent, so they are fetched concurrently and both
// awaited before the join.
func (s *StatsService) GetStats(ctx context.Context, req StatsRequest) (*StatsResponse, error) {
	var (
		games       []game.Game
		sessions    []session.Session
		gamesErr    error
		sessionsErr error
		wg          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		games, gamesErr = s.store.ListGames(ctx)
	}()
	go func() {
		defer wg.Done()
		sessions, sessionsErr = s.store.ListSessions(ctx)
	}()
	wg.Wait()

	if gamesErr != nil {
		return nil, fmt.Errorf("failed to load games: %w", gamesErr)
	}
	if sessionsErr != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", sessionsErr)
	}

	merged := stats.MergeSessionsWithGames(games, sessions)
	filtered := stats.FilterByRange(merged, req.StartDate, req.EndDate)
	gameStats := stats.Aggregate(filtered, games, req.IncludeHistoric)

	return &StatsResponse{
		GameStats: gameStats,
		Rows:      stats.Rows(gameStats),
		Totals:    stats.Summarize(gameStats),
	}, nil
}
