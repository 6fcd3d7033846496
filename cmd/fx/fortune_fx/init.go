package fortune_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
	"keliauk/pkg/scheduler"
)

// palmScanDuration mimics the hardware scanner: the scanning stage holds for
// a few seconds before results become available.
const palmScanDuration = 3 * time.Second

var Module = fx.Provide(
	provideFortuneService, provideScheduler)

func provideScheduler(lc fx.Lifecycle) scheduler.Scheduler {
	sched := scheduler.New()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sched.Shutdown()
			return nil
		},
	})
	return sched
}

func provideFortuneService(attractionRepo repositories.AttractionRepository, sched scheduler.Scheduler) services.FortuneServiceInterface {
	return services.NewFortuneService(attractionRepo, sched, palmScanDuration)
}
