package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ecosort/internal/domain/entity"
	"ecosort/internal/domain/repository"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileMirrorRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) SaveSnapshot(ctx context.Context, profile *entity.UserProfile) error {
	data := map[string]interface{}{
		"id":              profile.ID,
		"displayName":     profile.DisplayName,
		"email":           profile.Email,
		"score":           profile.Score,
		"co2Managed":      profile.CO2Managed,
		"itemsClassified": profile.ItemsClassified,
		"counters":        profile.Counters,
		"badges":          profile.Badges,
		"updatedAt":       time.Now(),
	}
	if profile.AvatarURL != "" {
		data["avatarURL"] = profile.AvatarURL
	}

	_, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, data, firestore.MergeAll)
	return err
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	doc, err := r.client.Collection("profiles").Doc(userID).Get(ctx)
	if err != nil {
		return nil, err
	}

	var profile entity.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) TopByScore(ctx context.Context, limit int) ([]entity.UserProfile, error) {
	iter := r.client.Collection("profiles").Where("score", ">", 0).OrderBy("score", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var profiles []entity.UserProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate top profiles: %w", err)
		}

		var profile entity.UserProfile
		if err := doc.DataTo(&profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *firestoreProfileRepository) All(ctx context.Context) ([]entity.UserProfile, error) {
	iter := r.client.Collection("profiles").Documents(ctx)
	defer iter.Stop()

	var profiles []entity.UserProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate profiles: %w", err)
		}

		var profile entity.UserProfile
		if err := doc.DataTo(&profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *firestoreProfileRepository) SaveClassification(ctx context.Context, userID string, record entity.ClassificationRecord) error {
	// The inline image stays local; the mirror only carries the metadata the
	// dashboards need.
	_, err := r.client.Collection("profiles").Doc(userID).Collection("classifications").Doc(record.ID).Set(ctx, map[string]interface{}{
		"id":            record.ID,
		"category":      record.Category,
		"confidence":    record.Confidence,
		"timestamp":     record.Timestamp,
		"pointsAwarded": record.PointsAwarded,
		"imageURL":      record.ImageURL,
	})
	return err
}

func (r *firestoreProfileRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]entity.ClassificationRecord, error) {
	iter := r.client.Collection("profiles").Doc(userID).Collection("classifications").OrderBy("timestamp", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var records []entity.ClassificationRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate classifications: %w", err)
		}

		var record entity.ClassificationRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to decode classification: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}
