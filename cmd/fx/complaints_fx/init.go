package complaints_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
)

var Module = fx.Provide(
	provideComplaintService, provideComplaintRepo)

func provideComplaintRepo(db *gorm.DB) repositories.ComplaintRepository {
	return repositories.NewComplaintRepository(db)
}

func provideComplaintService(complaintRepo repositories.ComplaintRepository) services.ComplaintServiceInterface {
	return services.NewComplaintService(complaintRepo)
}
