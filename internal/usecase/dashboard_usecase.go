package usecase

import (
	"context"
	"math"
	"sort"

	"ecosort/internal/domain/entity"
	"ecosort/internal/domain/repository"
	"ecosort/internal/domain/service"
	"ecosort/pkg/errors"
)

type DashboardUseCase struct {
	mirror repository.ProfileMirrorRepository
	bins   repository.BinRepository
}

func NewDashboardUseCase(mirror repository.ProfileMirrorRepository, bins repository.BinRepository) *DashboardUseCase {
	return &DashboardUseCase{
		mirror: mirror,
		bins:   bins,
	}
}

type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	AvatarURL   string  `json:"avatarUrl,omitempty"`
	Score       int     `json:"score"`
	Level       string  `json:"level"`
	CO2Managed  float64 `json:"co2Managed"`
}

// CommunityStats aggregates the mirrored profiles. ItemsClassified and the
// per-category totals are reported independently; they are not forced to
// agree (categories change over the product's lifetime).
type CommunityStats struct {
	Users           int                          `json:"users"`
	TotalScore      int                          `json:"totalScore"`
	ItemsClassified int                          `json:"itemsClassified"`
	CO2Managed      float64                      `json:"co2Managed"`
	ByCategory      map[entity.WasteCategory]int `json:"byCategory"`
}

func (uc *DashboardUseCase) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if uc.mirror == nil {
		return nil, errors.RemoteDataUnavailable("Leaderboard", nil)
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	profiles, err := uc.mirror.TopByScore(ctx, limit)
	if err != nil {
		return nil, errors.RemoteDataUnavailable("Leaderboard", err)
	}

	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i, profile := range profiles {
		entries = append(entries, LeaderboardEntry{
			Rank:        i + 1,
			UserID:      profile.ID,
			DisplayName: profile.DisplayName,
			AvatarURL:   profile.AvatarURL,
			Score:       profile.Score,
			Level:       service.LevelFor(profile.Score).Name,
			CO2Managed:  profile.CO2Managed,
		})
	}
	return entries, nil
}

func (uc *DashboardUseCase) CommunityStats(ctx context.Context) (*CommunityStats, error) {
	if uc.mirror == nil {
		return nil, errors.RemoteDataUnavailable("Community stats", nil)
	}

	profiles, err := uc.mirror.All(ctx)
	if err != nil {
		return nil, errors.RemoteDataUnavailable("Community stats", err)
	}

	stats := &CommunityStats{
		ByCategory: make(map[entity.WasteCategory]int),
	}
	for _, profile := range profiles {
		stats.Users++
		stats.TotalScore += profile.Score
		stats.ItemsClassified += profile.ItemsClassified
		stats.CO2Managed += profile.CO2Managed
		for _, category := range entity.AllCategories {
			if count := profile.Counters.Get(category); count > 0 {
				stats.ByCategory[category] += count
			}
		}
	}
	stats.CO2Managed = math.Round(stats.CO2Managed*10) / 10

	return stats, nil
}

// UserActivity is the mirrored profile of one community member plus their
// recent classifications, newest first.
type UserActivity struct {
	Profile *entity.UserProfile           `json:"profile"`
	Items   []entity.ClassificationRecord `json:"items"`
}

func (uc *DashboardUseCase) UserActivity(ctx context.Context, userID string, limit int) (*UserActivity, error) {
	if uc.mirror == nil {
		return nil, errors.RemoteDataUnavailable("Community activity", nil)
	}
	if userID == "" {
		return nil, errors.BadRequest("User id is required", nil)
	}
	if limit <= 0 || limit > entity.MaxHistory {
		limit = entity.RecentHistory
	}

	profile, err := uc.mirror.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Profile", err)
	}

	records, err := uc.mirror.RecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.RemoteDataUnavailable("Community activity", err)
	}

	return &UserActivity{
		Profile: profile,
		Items:   records,
	}, nil
}

func (uc *DashboardUseCase) Bins(ctx context.Context) ([]entity.SmartBin, error) {
	if uc.bins == nil {
		return nil, errors.RemoteDataUnavailable("Bin telemetry", nil)
	}

	snapshot, err := uc.bins.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	bins := make([]entity.SmartBin, 0, len(snapshot))
	for _, bin := range snapshot {
		// The list view doesn't carry each bin's full history array.
		bin.Levels = nil
		bins = append(bins, bin)
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].ID < bins[j].ID })
	return bins, nil
}

func (uc *DashboardUseCase) Bin(ctx context.Context, binID string) (*entity.SmartBin, error) {
	if uc.bins == nil {
		return nil, errors.RemoteDataUnavailable("Bin telemetry", nil)
	}
	if binID == "" {
		return nil, errors.BadRequest("Bin id is required", nil)
	}

	return uc.bins.GetByID(ctx, binID)
}

func (uc *DashboardUseCase) BinLevels(ctx context.Context, binID string) ([]entity.FillLevelReading, error) {
	if uc.bins == nil {
		return nil, errors.RemoteDataUnavailable("Bin telemetry", nil)
	}
	if binID == "" {
		return nil, errors.BadRequest("Bin id is required", nil)
	}

	return uc.bins.FillHistory(ctx, binID)
}
