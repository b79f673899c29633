package db

import (
	"context"

	"gorm.io/gorm"

	"habitat-api/internal/domain/model"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		health := model.NewComponentHealth(model.StatusDown, err.Error())
		health.Details["driver"] = "gorm"
		return health
	}
	return pingHealth(ctx, "gorm", sqlDB)
}
