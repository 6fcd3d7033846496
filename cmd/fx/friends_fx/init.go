package friends_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
)

var Module = fx.Provide(
	provideFriendService, provideFriendRepo)

func provideFriendRepo(db *gorm.DB) repositories.FriendRepository {
	return repositories.NewFriendRepository(db)
}

func provideFriendService(friendRepo repositories.FriendRepository) services.FriendServiceInterface {
	return services.NewFriendService(friendRepo)
}
