package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"todo-api/internal/domain/model"
)

type SQLXHealthDBGateway struct {
	DB *sqlx.DB
}

var _ HealthDBGateway = (*SQLXHealthDBGateway)(nil)

func NewSQLXHealthDBGateway(db *sqlx.DB) *SQLXHealthDBGateway {
	return &SQLXHealthDBGateway{DB: db}
}

func (gateway *SQLXHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return downStatus(err)
	}
	return upStatus(map[string]string{"driver": gateway.DB.DriverName()})
}
