package repository

import (
	"context"
	"sort"

	"firebase.google.com/go/v4/db"

	"ecosort/internal/domain/entity"
	"ecosort/internal/domain/repository"
	"ecosort/pkg/errors"
)

type rtdbBinRepository struct {
	client *db.Client
}

func NewRTDBBinRepository(client *db.Client) repository.BinRepository {
	return &rtdbBinRepository{
		client: client,
	}
}

func (r *rtdbBinRepository) Snapshot(ctx context.Context) (map[string]entity.SmartBin, error) {
	var bins map[string]entity.SmartBin
	if err := r.client.NewRef("bins").Get(ctx, &bins); err != nil {
		return nil, errors.RemoteDataUnavailable("Bin telemetry", err)
	}
	if bins == nil {
		bins = map[string]entity.SmartBin{}
	}

	for id, bin := range bins {
		bin.ID = id
		bins[id] = bin
	}
	return bins, nil
}

func (r *rtdbBinRepository) GetByID(ctx context.Context, binID string) (*entity.SmartBin, error) {
	var bin entity.SmartBin
	if err := r.client.NewRef("bins/"+binID).Get(ctx, &bin); err != nil {
		return nil, errors.RemoteDataUnavailable("Bin telemetry", err)
	}
	if bin.LastUpdated == 0 && bin.Location == "" {
		return nil, errors.NotFound("Bin", nil)
	}

	bin.ID = binID
	return &bin, nil
}

func (r *rtdbBinRepository) FillHistory(ctx context.Context, binID string) ([]entity.FillLevelReading, error) {
	var levels []entity.FillLevelReading
	if err := r.client.NewRef("bins/"+binID+"/levels").Get(ctx, &levels); err != nil {
		return nil, errors.RemoteDataUnavailable("Bin telemetry", err)
	}
	if levels == nil {
		levels = []entity.FillLevelReading{}
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Timestamp < levels[j].Timestamp
	})
	return levels, nil
}
