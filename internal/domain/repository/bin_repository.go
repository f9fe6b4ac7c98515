package repository

import (
	"context"

	"ecosort/internal/domain/entity"
)

// BinRepository reads smart-bin telemetry from the realtime database.
type BinRepository interface {
	// Snapshot returns the whole "bins" node keyed by bin id.
	Snapshot(ctx context.Context) (map[string]entity.SmartBin, error)
	GetByID(ctx context.Context, binID string) (*entity.SmartBin, error)
	FillHistory(ctx context.Context, binID string) ([]entity.FillLevelReading, error)
}
