package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"habitat-api/internal/domain/model"
	"habitat-api/pkg/location"
)

func TestSummaryKeyIgnoresDistrict(t *testing.T) {
	withDistrict := location.Key{Neighborhood: "Sants", District: "Sants-Montjuïc", City: "Barcelona"}
	without := location.Key{Neighborhood: "Sants", City: "Barcelona"}
	assert.Equal(t, "Barcelona|Sants", summaryKey(withDistrict))
	assert.Equal(t, summaryKey(withDistrict), summaryKey(without))
}

func TestRedisHealthGatewayWithoutClient(t *testing.T) {
	health := NewRedisHealthGateway(nil).Health(context.Background())
	assert.Equal(t, model.StatusUnknown, health.Status)
}
