package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
	mem "keliauk/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, mailService services.IMailService) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mem.NewCodes(), mem.NewCodes(), mailService)
}
