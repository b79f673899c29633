package queue

import (
	"context"

	"habitat-api/internal/domain/model"
	"habitat-api/pkg/sqs"
)

// WorkerHealthChecker is implemented by *sqs.Worker.
type WorkerHealthChecker interface {
	HealthCheck() sqs.WorkerHealth
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealthChecker)
	UnregisterWorker(name string)
}
