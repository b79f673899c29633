package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"habitat-api/internal/domain/model"
)

const healthTimeout = 2 * time.Second

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	return pingHealth(ctx, "sqlc", gateway.DB)
}

func pingHealth(ctx context.Context, driver string, db *sql.DB) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		health := model.NewComponentHealth(model.StatusDown, err.Error())
		health.Details["driver"] = driver
		return health
	}

	stats := db.Stats()
	health := model.NewComponentHealth(model.StatusUp, string(model.StatusUp))
	health.Details["driver"] = driver
	health.Details["open_connections"] = strconv.Itoa(stats.OpenConnections)
	health.Details["in_use"] = strconv.Itoa(stats.InUse)
	return health
}
