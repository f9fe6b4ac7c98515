package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosort/internal/domain/entity"
	"ecosort/internal/infrastructure/localstore"
	apperrors "ecosort/pkg/errors"
)

type fakeAuthClient struct {
	hints entity.IdentityHints
	err   error
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.hints.UserID, f.err
}

func (f *fakeAuthClient) IdentityHints(ctx context.Context, uid string) (entity.IdentityHints, error) {
	return f.hints, f.err
}

func (f *fakeAuthClient) GenerateToken(ctx context.Context, uid string) (string, error) {
	return "token", f.err
}

func (f *fakeAuthClient) TestConnection(ctx context.Context) error {
	return f.err
}

type fakeBroadcaster struct {
	topics   []string
	payloads []interface{}
}

func (f *fakeBroadcaster) Broadcast(topic string, payload interface{}) {
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
}

func newProfileUseCase(t *testing.T, auth FirebaseAuthClient, hub Broadcaster) (*ProfileUseCase, *localstore.Store) {
	t.Helper()
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return NewProfileUseCase(store, auth, hub), store
}

func TestGetProfileBuildsView(t *testing.T) {
	uc, store := newProfileUseCase(t, &fakeAuthClient{}, nil)

	profile := store.Profile()
	profile.ID = "user-1"
	profile.Score = 510
	profile.Counters.Glass = 3
	require.NoError(t, store.SaveProfile(profile))

	view, err := uc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Silver", view.Level.Name)
	assert.InDelta(t, 1.0, view.Progress, 0.0001)
	assert.Equal(t, entity.CategoryGlass, view.TopCategory)
	assert.NotEmpty(t, view.Tips.Recycle)
}

func TestGetProfileRequiresAuthentication(t *testing.T) {
	uc, _ := newProfileUseCase(t, &fakeAuthClient{}, nil)

	_, err := uc.GetProfile(context.Background(), "")
	assert.True(t, apperrors.Is(err, "AUTH_REQUIRED"))
}

func TestReconcileAppliesIdentityAndBroadcasts(t *testing.T) {
	hub := &fakeBroadcaster{}
	auth := &fakeAuthClient{hints: entity.IdentityHints{
		UserID:      "firebase-uid-1",
		DisplayName: "Eco User",
		Email:       "eco@example.com",
	}}
	uc, store := newProfileUseCase(t, auth, hub)

	view, err := uc.Reconcile(context.Background(), "firebase-uid-1")
	require.NoError(t, err)

	assert.Equal(t, "firebase-uid-1", view.Profile.ID)
	assert.Equal(t, "eco@example.com", view.Profile.Email)
	assert.Equal(t, []string{"auth_changed"}, hub.topics)
	assert.Equal(t, "firebase-uid-1", store.Profile().ID)
}

func TestLogoutResetsAndBroadcasts(t *testing.T) {
	hub := &fakeBroadcaster{}
	uc, store := newProfileUseCase(t, &fakeAuthClient{}, hub)

	profile := store.Profile()
	profile.ID = "user-1"
	profile.Score = 200
	require.NoError(t, store.SaveProfile(profile))

	require.NoError(t, uc.Logout(context.Background(), "user-1"))

	assert.Equal(t, entity.GuestUserID, store.Profile().ID)
	assert.Equal(t, 0, store.Profile().Score)
	assert.Equal(t, []string{"auth_changed"}, hub.topics)
}
