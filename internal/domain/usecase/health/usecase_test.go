package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"habitat-api/internal/domain/gateway/queue"
	"habitat-api/internal/domain/model"
)

type staticGateway struct {
	status model.HealthStatus
}

func (g staticGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.NewComponentHealth(g.status, string(g.status))
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		db       model.HealthStatus
		cache    model.HealthStatus
		expected model.HealthStatus
	}{
		{"all up", model.StatusUp, model.StatusUp, model.StatusUp},
		{"database down", model.StatusDown, model.StatusUp, model.StatusDown},
		{"cache down", model.StatusUp, model.StatusDown, model.StatusDown},
		{"cache not configured", model.StatusUp, model.StatusUnknown, model.StatusUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewHealthUseCase(staticGateway{tt.db}, staticGateway{tt.cache}, queue.NewQueueHealthGateway())

			response := useCase.CheckHealth(context.Background())

			assert.Equal(t, tt.expected, response.Status)
			assert.Equal(t, tt.db, response.Database.Status)
			assert.Equal(t, tt.cache, response.Cache.Status)
			assert.Equal(t, model.StatusUnknown, response.Queue.Status)
		})
	}
}
