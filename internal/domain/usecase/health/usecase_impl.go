package health

import (
	"context"
	"sync"

	"habitat-api/internal/domain/gateway/cache"
	"habitat-api/internal/domain/gateway/db"
	"habitat-api/internal/domain/gateway/queue"
	"habitat-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	var wg sync.WaitGroup
	var dbHealth, cacheHealth, queueHealth model.ComponentHealthStatus
	wg.Add(3)
	go func() {
		defer wg.Done()
		dbHealth = useCase.dbGateway.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		queueHealth = useCase.queueGateway.Health(ctx)
	}()
	wg.Wait()

	return model.HealthResponse{
		Status:   overallStatus(dbHealth, cacheHealth, queueHealth),
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}

// overallStatus is DOWN when any component is DOWN. UNKNOWN marks a component that is not
// configured and leaves the application UP.
func overallStatus(components ...model.ComponentHealthStatus) model.HealthStatus {
	for _, component := range components {
		if component.Status == model.StatusDown {
			return model.StatusDown
		}
	}
	return model.StatusUp
}
