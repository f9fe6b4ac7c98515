package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosort/internal/domain/entity"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	store := newStore(t)

	profile := store.Profile()
	assert.Equal(t, entity.GuestUserID, profile.ID)
	assert.Equal(t, 0, profile.Score)
	assert.Empty(t, store.History(0))
}

func TestLoadFallsBackOnCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("[[["), 0o644))

	store, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, entity.GuestUserID, store.Profile().ID)
	assert.Empty(t, store.History(0))
}

func TestSaveProfilePersistsAcrossReloads(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	profile := store.Profile()
	profile.ID = "user-1"
	profile.Email = "eco@example.com"
	profile.Score = 120
	require.NoError(t, store.SaveProfile(profile))

	reloaded, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, "user-1", reloaded.Profile().ID)
	assert.Equal(t, 120, reloaded.Profile().Score)
}

func TestCommitClassificationPrependsAndCaps(t *testing.T) {
	store := newStore(t)

	profile := store.Profile()
	for i := 0; i < entity.MaxHistory+1; i++ {
		record := entity.NewClassificationRecord("img", entity.ClassificationResult{
			Category:   entity.CategoryGlass,
			Confidence: 0.8,
		})
		record.ID = recordID(i)
		profile.Score += record.PointsAwarded
		require.NoError(t, store.CommitClassification(profile, record))
	}

	history := store.History(0)
	assert.Len(t, history, entity.MaxHistory)
	assert.Equal(t, recordID(entity.MaxHistory), history[0].ID)
	for _, record := range history {
		assert.NotEqual(t, recordID(0), record.ID, "oldest record should be evicted")
	}
}

func TestHistoryLimitReturnsNewestFirst(t *testing.T) {
	store := newStore(t)

	profile := store.Profile()
	for i := 0; i < 8; i++ {
		record := entity.NewClassificationRecord("img", entity.ClassificationResult{Category: entity.CategoryPaper})
		record.ID = recordID(i)
		require.NoError(t, store.CommitClassification(profile, record))
	}

	recent := store.History(entity.RecentHistory)
	require.Len(t, recent, entity.RecentHistory)
	assert.Equal(t, recordID(7), recent[0].ID)
	assert.Equal(t, recordID(3), recent[4].ID)
}

func TestReconcileLogoutResetsToGuest(t *testing.T) {
	store := newStore(t)

	profile := store.Profile()
	profile.ID = "user-1"
	profile.Email = "eco@example.com"
	profile.Score = 300
	require.NoError(t, store.SaveProfile(profile))

	reconciled, err := store.ReconcileOnAuthChange(false, entity.IdentityHints{})
	require.NoError(t, err)

	assert.Equal(t, entity.GuestUserID, reconciled.ID)
	assert.Equal(t, 0, reconciled.Score)
	assert.Equal(t, entity.GuestUserID, store.Profile().ID)
}

func TestReconcileMatchingEmailPreservesCounters(t *testing.T) {
	store := newStore(t)

	profile := store.Profile()
	profile.ID = "user-1"
	profile.Email = "eco@example.com"
	profile.Score = 300
	profile.Counters.Glass = 4
	require.NoError(t, store.SaveProfile(profile))

	reconciled, err := store.ReconcileOnAuthChange(true, entity.IdentityHints{
		UserID:      "firebase-uid-9",
		DisplayName: "Eco User",
		Email:       "eco@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "firebase-uid-9", reconciled.ID)
	assert.Equal(t, "Eco User", reconciled.DisplayName)
	assert.Equal(t, 300, reconciled.Score)
	assert.Equal(t, 4, reconciled.Counters.Glass)
}

func TestReconcileDifferentEmailResetsCounters(t *testing.T) {
	store := newStore(t)

	profile := store.Profile()
	profile.ID = "user-1"
	profile.Email = "old@example.com"
	profile.Score = 300
	profile.Counters.Glass = 4
	require.NoError(t, store.SaveProfile(profile))

	reconciled, err := store.ReconcileOnAuthChange(true, entity.IdentityHints{
		UserID:      "firebase-uid-9",
		DisplayName: "New User",
		Email:       "new@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "firebase-uid-9", reconciled.ID)
	assert.Equal(t, "new@example.com", reconciled.Email)
	assert.Equal(t, 0, reconciled.Score)
	assert.Equal(t, 0, reconciled.Counters.Glass)
}

func TestSubscribeNotifiesOnPersistedChanges(t *testing.T) {
	store := newStore(t)

	var notified []string
	store.Subscribe(func(p *entity.UserProfile) {
		notified = append(notified, p.ID)
	})

	profile := store.Profile()
	profile.ID = "user-1"
	require.NoError(t, store.SaveProfile(profile))

	_, err := store.ReconcileOnAuthChange(false, entity.IdentityHints{})
	require.NoError(t, err)

	assert.Equal(t, []string{"user-1", entity.GuestUserID}, notified)
}

func TestReconcileNoChangeDoesNotNotify(t *testing.T) {
	store := newStore(t)

	calls := 0
	store.Subscribe(func(*entity.UserProfile) { calls++ })

	// Guest profile reconciled to logged-out guest is a no-op.
	_, err := store.ReconcileOnAuthChange(false, entity.IdentityHints{})
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}

func recordID(i int) string {
	return "rec-" + string(rune('a'+i%26)) + string(rune('0'+i/26))
}
