package services

import (
	"context"
	"log"

	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/utils"
)

type FriendServiceInterface interface {
	ListFriends(ctx context.Context) ([]response_models.Friend, error)
}

type FriendService struct {
	friendRepo repositories.FriendRepository
}

func NewFriendService(friendRepo repositories.FriendRepository) FriendServiceInterface {
	return &FriendService{
		friendRepo: friendRepo,
	}
}

func (f *FriendService) ListFriends(ctx context.Context) ([]response_models.Friend, error) {
	friends, err := f.friendRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing friends: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Friend, 0, len(friends))
	for _, friend := range friends {
		out = append(out, response_models.Friend{
			ID:     friend.ID.String(),
			Name:   friend.Name,
			Avatar: friend.Avatar,
			Status: friend.Status,
		})
	}
	return out, nil
}
