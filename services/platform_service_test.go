package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playShelfAPI/internal/types/friend"
	"playShelfAPI/internal/types/platform"
)

func TestListPlatforms_SortedByName(t *testing.T) {
	fs := &fakeStore{
		platforms: []platform.Platform{
			{ID: "1", Name: "Switch"},
			{ID: "2", Name: "PC"},
		},
	}
	svc := NewPlatformService(fs)

	platforms, err := svc.ListPlatforms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PC", platforms[0].Name)
	assert.Equal(t, "Switch", platforms[1].Name)
}

func TestCreatePlatform_RequiresName(t *testing.T) {
	svc := NewPlatformService(&fakeStore{})

	_, err := svc.CreatePlatform(context.Background(), &platform.CreatePlatformRequest{IsRetro: true})
	assert.Error(t, err)

	created, err := svc.CreatePlatform(context.Background(), &platform.CreatePlatformRequest{Name: "SNES", IsRetro: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsRetro)
}

func TestCreateFriend(t *testing.T) {
	svc := NewFriendService(&fakeStore{})

	_, err := svc.CreateFriend(context.Background(), &friend.CreateFriendRequest{})
	assert.Error(t, err)

	created, err := svc.CreateFriend(context.Background(), &friend.CreateFriendRequest{Name: "Sam"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sam", created.Name)
}
