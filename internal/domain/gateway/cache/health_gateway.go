package cache

import (
	"context"
	"time"

	"habitat-api/internal/domain/model"
	"habitat-api/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.client == nil {
		return model.NewComponentHealth(model.StatusUnknown, "redis not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := gateway.client.Ping(ctx); err != nil {
		health := model.NewComponentHealth(model.StatusDown, err.Error())
		health.Details["address"] = gateway.client.Config().Address
		return health
	}

	health := model.NewComponentHealth(model.StatusUp, string(model.StatusUp))
	health.Details["address"] = gateway.client.Config().Address
	health.Details["latency"] = time.Since(start).String()
	return health
}
