package usecase

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"

	"ecosort/internal/domain/entity"
	"ecosort/internal/domain/repository"
	"ecosort/internal/domain/service"
	"ecosort/internal/infrastructure/localstore"
	"ecosort/pkg/errors"
	"ecosort/pkg/logger"
)

type ClassificationUseCase struct {
	store      *localstore.Store
	classifier Classifier
	mirror     repository.ProfileMirrorRepository
	archiver   ImageArchiver

	mu       sync.Mutex
	inflight map[string]bool
}

func NewClassificationUseCase(
	store *localstore.Store,
	classifier Classifier,
	mirror repository.ProfileMirrorRepository,
	archiver ImageArchiver,
) *ClassificationUseCase {
	return &ClassificationUseCase{
		store:      store,
		classifier: classifier,
		mirror:     mirror,
		archiver:   archiver,
		inflight:   make(map[string]bool),
	}
}

// ClassifyInput carries one photo submission. Hint is the category the user
// initiated the upload from; it never overrides the resolved category.
type ClassifyInput struct {
	Image string
	Hint  entity.WasteCategory
}

type ClassifyOutput struct {
	Record   entity.ClassificationRecord `json:"record"`
	Profile  *entity.UserProfile         `json:"profile"`
	Level    entity.LevelInfo            `json:"level"`
	Progress float64                     `json:"progress"`
	Tips     entity.CategoryTips         `json:"tips"`
}

// Classify runs one classification end to end: auth gate, single-in-flight
// gate, profile ownership check, external call, record construction, scoring,
// persistence. The caller must be the user the stored profile belongs to;
// anyone else is rejected before any state is read or written. Persistence
// happens last, so a returned record always corresponds to persisted state.
// A result whose caller has gone away is still persisted; it is simply never
// rendered (discard-late-result policy).
func (uc *ClassificationUseCase) Classify(ctx context.Context, userID string, input ClassifyInput) (*ClassifyOutput, error) {
	if userID == "" || userID == entity.GuestUserID {
		return nil, errors.AuthRequired(nil)
	}

	// Only one in-flight classification per user. A second attempt is
	// rejected outright rather than queued, so a single user action can
	// never apply its score twice.
	uc.mu.Lock()
	if uc.inflight[userID] {
		uc.mu.Unlock()
		return nil, errors.ClassificationInProgress()
	}
	uc.inflight[userID] = true
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		delete(uc.inflight, userID)
		uc.mu.Unlock()
	}()

	if profile := uc.store.Profile(); profile.ID != userID {
		return nil, errors.Unauthorized("Signed-in user does not match the stored profile", nil)
	}

	result, err := uc.classifier.Classify(ctx, input.Image)
	if err != nil {
		return nil, errors.ClassificationFailed(err.Error(), err)
	}
	if result.Category == "" {
		return nil, errors.InvalidResult("Classifier returned no category")
	}
	if !result.Category.Valid() {
		return nil, errors.InvalidResult("Classifier returned unknown category: " + string(result.Category))
	}
	if input.Hint != "" && input.Hint != result.Category {
		logger.Debug("Resolved category %q differs from upload hint %q; resolved wins", result.Category, input.Hint)
	}

	record := entity.NewClassificationRecord(input.Image, *result)
	record.ImageURL = uc.archiveImage(ctx, userID, input.Image)

	profile := uc.store.Profile()
	if profile.ID != userID {
		// The identity changed while the classifier was running. The
		// result has no owner left to credit, so it is discarded.
		return nil, errors.Unauthorized("Signed-in user does not match the stored profile", nil)
	}
	updated := service.ApplyClassification(profile, result.Category)

	if err := uc.store.CommitClassification(updated, record); err != nil {
		logger.LogClassificationError(userID, "persist", err)
		return nil, err
	}

	uc.mirrorSnapshot(ctx, updated, record)

	level := service.LevelFor(updated.Score)
	return &ClassifyOutput{
		Record:   record,
		Profile:  updated,
		Level:    level,
		Progress: service.ProgressToward(updated.Score, level),
		Tips:     entity.TipsFor(result.Category),
	}, nil
}

// History returns the most recent records, newest first. limit defaults to
// the display slice and is capped at the stored maximum.
func (uc *ClassificationUseCase) History(userID string, limit int) ([]entity.ClassificationRecord, error) {
	if userID == "" || userID == entity.GuestUserID {
		return nil, errors.AuthRequired(nil)
	}
	if profile := uc.store.Profile(); profile.ID != userID {
		return nil, errors.Unauthorized("Signed-in user does not match the stored profile", nil)
	}

	if limit <= 0 {
		limit = entity.RecentHistory
	}
	if limit > entity.MaxHistory {
		limit = entity.MaxHistory
	}
	return uc.store.History(limit), nil
}

func (uc *ClassificationUseCase) archiveImage(ctx context.Context, userID, imageData string) string {
	if uc.archiver == nil {
		return ""
	}

	payload := imageData
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		logger.LogClassificationError(userID, "archive-decode", err)
		return ""
	}

	url, err := uc.archiver.UploadImage(ctx, raw, contentTypeOf(imageData))
	if err != nil {
		logger.LogClassificationError(userID, "archive-upload", err)
		return ""
	}
	return url
}

func contentTypeOf(imageData string) string {
	if strings.HasPrefix(imageData, "data:") {
		if idx := strings.Index(imageData, ";"); idx > 5 {
			return imageData[5:idx]
		}
	}
	return "image/jpeg"
}

// mirrorSnapshot pushes the snapshot and the record to Firestore, both keyed
// by the profile's own identity so one classification never splits across two
// documents.
func (uc *ClassificationUseCase) mirrorSnapshot(ctx context.Context, profile *entity.UserProfile, record entity.ClassificationRecord) {
	if uc.mirror == nil {
		return
	}

	// Dashboard mirror is best-effort; the local store already holds the
	// authoritative result.
	if err := uc.mirror.SaveSnapshot(ctx, profile); err != nil {
		logger.LogClassificationError(profile.ID, "mirror-profile", err)
	}
	if err := uc.mirror.SaveClassification(ctx, profile.ID, record); err != nil {
		logger.LogClassificationError(profile.ID, "mirror-record", err)
	}
}
