package usecase

import (
	"context"

	"ecosort/internal/domain/entity"
	"ecosort/internal/domain/service"
	"ecosort/internal/infrastructure/localstore"
	"ecosort/pkg/errors"
	"ecosort/pkg/logger"
)

type ProfileUseCase struct {
	store        *localstore.Store
	firebaseAuth FirebaseAuthClient
	hub          Broadcaster
}

func NewProfileUseCase(store *localstore.Store, firebaseAuth FirebaseAuthClient, hub Broadcaster) *ProfileUseCase {
	return &ProfileUseCase{
		store:        store,
		firebaseAuth: firebaseAuth,
		hub:          hub,
	}
}

// ProfileView is the profile plus everything the home page derives from it.
type ProfileView struct {
	Profile     *entity.UserProfile           `json:"profile"`
	Level       entity.LevelInfo              `json:"level"`
	Progress    float64                       `json:"progress"`
	TopCategory entity.WasteCategory          `json:"topCategory"`
	Tips        entity.CategoryTips           `json:"tips"`
	Recent      []entity.ClassificationRecord `json:"recent"`
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*ProfileView, error) {
	if userID == "" {
		return nil, errors.AuthRequired(nil)
	}

	profile := uc.store.Profile()
	return uc.buildView(profile), nil
}

// Reconcile re-runs the load/reconcile step against the caller's current
// identity, then broadcasts the auth_changed cross-view signal so every
// dashboard view re-reads its state.
func (uc *ProfileUseCase) Reconcile(ctx context.Context, userID string) (*ProfileView, error) {
	if userID == "" {
		return nil, errors.AuthRequired(nil)
	}

	hints, err := uc.firebaseAuth.IdentityHints(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to resolve identity", err)
	}

	profile, err := uc.store.ReconcileOnAuthChange(true, hints)
	if err != nil {
		return nil, err
	}

	uc.broadcastAuthChanged(true, profile.ID)
	return uc.buildView(profile), nil
}

// Logout resets the local profile to guest defaults. Prior session progress
// is discarded; there is no server-side account to hand it to.
func (uc *ProfileUseCase) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.AuthRequired(nil)
	}

	if _, err := uc.store.ReconcileOnAuthChange(false, entity.IdentityHints{}); err != nil {
		return err
	}

	uc.broadcastAuthChanged(false, entity.GuestUserID)
	return nil
}

func (uc *ProfileUseCase) buildView(profile *entity.UserProfile) *ProfileView {
	level := service.LevelFor(profile.Score)
	topCategory := profile.TopCategory()

	return &ProfileView{
		Profile:     profile,
		Level:       level,
		Progress:    service.ProgressToward(profile.Score, level),
		TopCategory: topCategory,
		Tips:        entity.TipsFor(topCategory),
		Recent:      uc.store.History(entity.RecentHistory),
	}
}

func (uc *ProfileUseCase) broadcastAuthChanged(isLoggedIn bool, userID string) {
	if uc.hub == nil {
		return
	}

	uc.hub.Broadcast("auth_changed", map[string]interface{}{
		"loggedIn": isLoggedIn,
		"userId":   userID,
	})
	logger.Debug("Broadcast auth_changed: loggedIn=%t userId=%s", isLoggedIn, userID)
}
