package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/platform"
)

type PlatformService struct {
	store store.Store
}

func NewPlatformService(store store.Store) *PlatformService {
	return &PlatformService{store: store}
}

func (s *PlatformService) ListPlatforms(ctx context.Context) ([]platform.Platform, error) {
	platforms, err := s.store.ListPlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load platforms: %w", err)
	}
	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].Name < platforms[j].Name
	})
	return platforms, nil
}

func (s *PlatformService) CreatePlatform(ctx context.Context, req *platform.CreatePlatformRequest) (*platform.Platform, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("platform name is required")
	}

	p := platform.Platform{
		ID:      uuid.NewString(),
		Name:    req.Name,
		IsRetro: req.IsRetro,
	}

	if err := s.store.CreatePlatform(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}
