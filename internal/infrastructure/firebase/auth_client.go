package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"ecosort/internal/domain/entity"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// IdentityHints fetches the identity fields used to reconcile the local
// profile after an auth change.
func (f *FirebaseAuthClient) IdentityHints(ctx context.Context, uid string) (entity.IdentityHints, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return entity.IdentityHints{}, err
	}

	return entity.IdentityHints{
		UserID:      user.UID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		AvatarURL:   user.PhotoURL,
	}, nil
}

func (f *FirebaseAuthClient) GenerateToken(ctx context.Context, uid string) (string, error) {
	token, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	// A lookup for a uid that cannot exist still proves the Auth backend is
	// reachable; only transport errors are reported.
	_, err := f.client.GetUser(ctx, "connection-check")
	if err != nil && auth.IsUserNotFound(err) {
		return nil
	}
	return err
}
