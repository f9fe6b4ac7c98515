package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"ecosort/internal/domain/entity"
	"ecosort/pkg/errors"
	"ecosort/pkg/logger"
)

const (
	profileFile = "profile.json"
	historyFile = "history.json"
)

// Store persists the user profile and the bounded classification history as
// two named JSON records, and notifies subscribers after every persisted
// profile change. It is the single authority for the user's own gamification
// state; no server-side reconciliation is attempted.
type Store struct {
	mu      sync.Mutex
	dir     string
	profile *entity.UserProfile
	history []entity.ClassificationRecord
	subs    []func(*entity.UserProfile)
}

// New loads the persisted records from dir. A missing or corrupt record falls
// back to guest defaults instead of failing; only an unusable directory is an
// error.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.StorageUnavailable(err)
	}

	s := &Store{dir: dir}
	s.profile = s.loadProfile()
	s.history = s.loadHistory()
	return s, nil
}

func (s *Store) loadProfile() *entity.UserProfile {
	data, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read stored profile, falling back to guest: %v", err)
		}
		return entity.GuestProfile()
	}

	var profile entity.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		logger.Warn("Stored profile is corrupt, falling back to guest: %v", err)
		return entity.GuestProfile()
	}
	if profile.ID == "" {
		return entity.GuestProfile()
	}
	if profile.Badges == nil {
		profile.Badges = []string{}
	}
	return &profile
}

func (s *Store) loadHistory() []entity.ClassificationRecord {
	data, err := os.ReadFile(filepath.Join(s.dir, historyFile))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read stored history, starting empty: %v", err)
		}
		return []entity.ClassificationRecord{}
	}

	var history []entity.ClassificationRecord
	if err := json.Unmarshal(data, &history); err != nil {
		logger.Warn("Stored history is corrupt, starting empty: %v", err)
		return []entity.ClassificationRecord{}
	}
	if len(history) > entity.MaxHistory {
		history = history[:entity.MaxHistory]
	}
	return history
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() *entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// History returns up to limit records, newest first. limit <= 0 returns the
// full stored history.
func (s *Store) History(limit int) []entity.ClassificationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.history) {
		limit = len(s.history)
	}
	out := make([]entity.ClassificationRecord, limit)
	copy(out, s.history[:limit])
	return out
}

// Subscribe registers a callback invoked after every persisted profile
// change. Callbacks run synchronously under the store's event ordering.
func (s *Store) Subscribe(fn func(*entity.UserProfile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SaveProfile persists the profile and notifies subscribers.
func (s *Store) SaveProfile(profile *entity.UserProfile) error {
	s.mu.Lock()
	if err := s.writeProfile(profile); err != nil {
		s.mu.Unlock()
		return err
	}
	s.profile = profile.Clone()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	s.notify(subs, profile)
	return nil
}

// CommitClassification prepends the record to the bounded history and
// persists history and profile as one outcome. Persistence happens last in
// the classification flow, so a returned record always corresponds to a
// persisted state; on error the in-memory state is untouched.
func (s *Store) CommitClassification(profile *entity.UserProfile, record entity.ClassificationRecord) error {
	s.mu.Lock()

	updated := entity.PrependRecord(s.history, record)
	if err := s.writeHistory(updated); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.writeProfile(profile); err != nil {
		// History file is already on disk; the profile write failing leaves
		// the in-memory state at the prior consistent pair and surfaces the
		// failure to the caller.
		s.mu.Unlock()
		return err
	}

	s.history = updated
	s.profile = profile.Clone()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	s.notify(subs, profile)
	return nil
}

// ReconcileOnAuthChange aligns the stored profile with the current
// authentication state. Logged out returns guest defaults, discarding prior
// guest-session progress. Logged in preserves counters only when the stored
// email matches the new identity's email; otherwise the profile is
// re-initialized from the identity hints with zero counters. The reconciled
// value is written back whenever it differs from what is stored.
func (s *Store) ReconcileOnAuthChange(isLoggedIn bool, hints entity.IdentityHints) (*entity.UserProfile, error) {
	s.mu.Lock()

	var reconciled *entity.UserProfile
	if !isLoggedIn {
		reconciled = entity.GuestProfile()
	} else if s.profile.Email != "" && s.profile.Email == hints.Email {
		reconciled = s.profile.Clone()
		reconciled.ID = hints.UserID
		reconciled.DisplayName = hints.DisplayName
		reconciled.AvatarURL = hints.AvatarURL
		reconciled.UpdatedAt = time.Now()
	} else {
		if s.profile.Score > 0 {
			logger.Warn("Discarding local progress for %q on identity change (score=%d)", s.profile.ID, s.profile.Score)
		}
		reconciled = entity.GuestProfile()
		reconciled.ID = hints.UserID
		reconciled.DisplayName = hints.DisplayName
		reconciled.Email = hints.Email
		reconciled.AvatarURL = hints.AvatarURL
	}

	if profilesEqual(s.profile, reconciled) {
		result := s.profile.Clone()
		s.mu.Unlock()
		return result, nil
	}

	if err := s.writeProfile(reconciled); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.profile = reconciled.Clone()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	s.notify(subs, reconciled)
	return reconciled.Clone(), nil
}

func profilesEqual(a, b *entity.UserProfile) bool {
	ac, bc := *a, *b
	ac.CreatedAt, bc.CreatedAt = time.Time{}, time.Time{}
	ac.UpdatedAt, bc.UpdatedAt = time.Time{}, time.Time{}
	return reflect.DeepEqual(ac, bc)
}

func (s *Store) writeProfile(profile *entity.UserProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return errors.StorageUnavailable(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, profileFile), data, 0o644); err != nil {
		return errors.StorageUnavailable(err)
	}
	return nil
}

func (s *Store) writeHistory(history []entity.ClassificationRecord) error {
	data, err := json.Marshal(history)
	if err != nil {
		return errors.StorageUnavailable(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, historyFile), data, 0o644); err != nil {
		return errors.StorageUnavailable(err)
	}
	return nil
}

func (s *Store) snapshotSubs() []func(*entity.UserProfile) {
	subs := make([]func(*entity.UserProfile), len(s.subs))
	copy(subs, s.subs)
	return subs
}

func (s *Store) notify(subs []func(*entity.UserProfile), profile *entity.UserProfile) {
	for _, fn := range subs {
		fn(profile.Clone())
	}
}
