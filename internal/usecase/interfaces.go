package usecase

import (
	"context"

	"ecosort/internal/domain/entity"
)

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	IdentityHints(ctx context.Context, uid string) (entity.IdentityHints, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
	TestConnection(ctx context.Context) error
}

// Classifier is the external AI classification call. It either resolves a
// category with a confidence score or fails; an empty category on success is
// the caller's problem to reject.
type Classifier interface {
	Classify(ctx context.Context, imageBase64 string) (*entity.ClassificationResult, error)
}

// ImageArchiver stores the raw image of a classification. Optional; archival
// failures never fail a classification.
type ImageArchiver interface {
	UploadImage(ctx context.Context, data []byte, contentType string) (string, error)
}

// Broadcaster pushes cross-view signals to connected dashboard clients.
type Broadcaster interface {
	Broadcast(topic string, payload interface{})
}
