package repository

import (
	"context"

	"ecosort/internal/domain/entity"
)

// ProfileMirrorRepository is the server-side mirror of user profiles used by
// the community dashboard and leaderboard. The local store stays
// authoritative for the user's own score; mirror writes are best-effort.
type ProfileMirrorRepository interface {
	SaveSnapshot(ctx context.Context, profile *entity.UserProfile) error
	GetByID(ctx context.Context, userID string) (*entity.UserProfile, error)
	TopByScore(ctx context.Context, limit int) ([]entity.UserProfile, error)
	All(ctx context.Context) ([]entity.UserProfile, error)

	SaveClassification(ctx context.Context, userID string, record entity.ClassificationRecord) error
	RecentByUser(ctx context.Context, userID string, limit int) ([]entity.ClassificationRecord, error)
}
