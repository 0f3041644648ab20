package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"playShelfAPI/internal/store"
	"playShelfAPI/internal/types/friend"
)

type FriendService struct {
	store store.Store
}

func NewFriendService(store store.Store) *FriendService {
	return &FriendService{store: store}
}

func (s *FriendService) ListFriends(ctx context.Context) ([]friend.Friend, error) {
	friends, err := s.store.ListFriends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load friends: %w", err)
	}
	sort.Slice(friends, func(i, j int) bool {
		return friends[i].Name < friends[j].Name
	})
	return friends, nil
}

func (s *FriendService) CreateFriend(ctx context.Context, req *friend.CreateFriendRequest) (*friend.Friend, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("friend name is required")
	}

	f := friend.Friend{
		ID:   uuid.NewString(),
		Name: req.Name,
	}

	if err := s.store.CreateFriend(ctx, f); err != nil {
		return nil, err
	}
	return &f, nil
}
