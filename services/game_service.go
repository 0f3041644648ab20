package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"playShelfAPI/internal/stats"
	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/game"
)

type GameService struct {
	store store.Store
}

func NewGameService(store store.Store) *GameService {
	return &GameService{store: store}
}

// ListGames returns the full library with platform names attached,
// favourites first and alphabetical within each group.
func (s *GameService) ListGames(ctx context.Context) ([]game.WithPlatform, error) {
	games, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	platforms, err := s.store.ListPlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load platforms: %w", err)
	}

	merged := stats.MergeGamesWithPlatforms(games, platforms)
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].IsFavourite != merged[j].IsFavourite {
			return merged[i].IsFavourite
		}
		return merged[i].Name < merged[j].Name
	})
	return merged, nil
}

func (s *GameService) CreateGame(ctx context.Context, req *game.CreateGameRequest) (*game.Game, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("game name is required")
	}
	if req.PlatformID == "" {
		return nil, fmt.Errorf("platform is required")
	}

	g := game.Game{
		ID:               uuid.NewString(),
		Name:             req.Name,
		PlatformID:       req.PlatformID,
		ReleaseDate:      req.ReleaseDate,
		PurchaseDate:     req.PurchaseDate,
		MetacriticRating: req.MetacriticRating,
		Cost:             req.Cost,
		HistoricHours:    req.HistoricHours,
	}

	if err := s.store.CreateGame(ctx, g); err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGame applies an inline edit. Only the fields present in the
// request reach the store.
func (s *GameService) UpdateGame(ctx context.Context, id string, req *game.UpdateGameRequest) error {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PlatformID != nil {
		updates["platform_id"] = *req.PlatformID
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.PurchaseDate != nil {
		updates["purchase_date"] = *req.PurchaseDate
	}
	if req.MetacriticRating != nil {
		updates["metacritic_rating"] = *req.MetacriticRating
	}
	if req.Cost != nil {
		updates["cost"] = *req.Cost
	}
	if req.HistoricHours != nil {
		updates["historic_hours"] = *req.HistoricHours
	}

	return s.store.UpdateGame(ctx, id, updates)
}

func (s *GameService) SetFavourite(ctx context.Context, id string, favourite bool) error {
	return s.store.UpdateGame(ctx, id, map[string]any{"is_favourite": favourite})
}

func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	return s.store.DeleteGame(ctx, id)
}
