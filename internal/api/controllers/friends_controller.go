package controllers

import (
	"github.com/gin-gonic/gin"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type FriendsController struct {
	friendService services.FriendServiceInterface
}

func NewFriendsController(friendService services.FriendServiceInterface) *FriendsController {
	return &FriendsController{
		friendService: friendService,
	}
}

func (f *FriendsController) ListFriends(c *gin.Context) {
	friends, err := f.friendService.ListFriends(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, friends, "Friends fetched successfully")
}
