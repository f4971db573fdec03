package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/seed"
	"ripple/internal/storage"
)

// UserStore owns the roster of user profiles and the identity of the current
// user. It is the only component that mutates User records.
type UserStore struct {
	mu        sync.RWMutex
	kv        storage.KV
	logger    *slog.Logger
	persister *persister
	users     []models.User
	current   *models.User
}

// NewUserStore creates a UserStore bound to the given storage. Call Load
// before using it.
func NewUserStore(kv storage.KV, logger *slog.Logger) *UserStore {
	return &UserStore{
		kv:        kv,
		logger:    logger,
		persister: newPersister(kv, logger),
	}
}

// Load populates the store from persisted snapshots. On any storage or decode
// failure it falls back to the built-in sample dataset, so the store is always
// usable afterwards. Load never reports an error to the caller.
func (s *UserStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadUsersLocked(ctx)
	s.loadCurrentUserLocked(ctx)
}

func (s *UserStore) loadUsersLocked(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, usersKey)
	if err == nil && ok {
		users, decodeErr := decodeUserSnapshot(raw)
		if decodeErr == nil {
			s.users = users
			observability.SnapshotLoads.WithLabelValues(usersKey, "stored").Inc()
			return
		}
		err = decodeErr
	}
	if err != nil {
		s.logger.Error("loading users failed, seeding defaults", "error", err)
	}

	s.users = seed.Users()
	observability.SnapshotLoads.WithLabelValues(usersKey, "seed").Inc()
	if blob, encErr := encodeUserSnapshot(s.users); encErr == nil {
		if setErr := s.kv.Set(ctx, usersKey, blob); setErr != nil {
			s.logger.Error("persisting seeded users failed", "error", setErr)
		}
	}
}

func (s *UserStore) loadCurrentUserLocked(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, currentUserKey)
	if err == nil && ok {
		var u models.User
		if decodeErr := json.Unmarshal(raw, &u); decodeErr == nil {
			upgraded := upgradeUsers([]models.User{u})
			s.current = &upgraded[0]
			return
		}
	}
	if err != nil {
		s.logger.Error("loading current user failed, using default", "error", err)
	}

	// Default to the first sample user so the app always has an acting
	// identity out of the box.
	u := seed.DefaultCurrentUser()
	s.current = &u
	if blob, encErr := json.Marshal(u); encErr == nil {
		if setErr := s.kv.Set(ctx, currentUserKey, blob); setErr != nil {
			s.logger.Error("persisting default current user failed", "error", setErr)
		}
	}
}

// Users returns a copy of the full roster.
func (s *UserStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// CurrentUser returns the acting identity for this session, if any.
func (s *UserStore) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return s.current.Clone(), true
}

// GetByUsername returns the first user with the given handle.
func (s *UserStore) GetByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

// SetCurrentUser switches the acting identity to the user with the given
// handle and persists the choice. An empty username signs out.
func (s *UserStore) SetCurrentUser(username string) (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == "" {
		s.current = nil
		return s.persister.enqueue(kvWrite{Key: currentUserKey}), nil
	}

	for _, u := range s.users {
		if u.Username == username {
			cloned := u.Clone()
			s.current = &cloned
			return s.enqueueCurrentUserLocked(), nil
		}
	}
	return confirmedReceipt(), models.NewNotFoundError("User", username)
}

// Follow adds a dual-sided edge from the current user to the target. Both
// sides of the edge are updated in the same mutation. Following yourself or a
// user you already follow changes nothing.
func (s *UserStore) Follow(targetID string) (*Receipt, error) {
	return s.setEdge(targetID, true)
}

// Unfollow removes the dual-sided edge. Removing an absent edge is a no-op.
func (s *UserStore) Unfollow(targetID string) (*Receipt, error) {
	return s.setEdge(targetID, false)
}

func (s *UserStore) setEdge(targetID string, follow bool) (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return confirmedReceipt(), models.NewUnauthorizedError("You must be logged in to follow users")
	}
	currentID := s.current.ID
	if targetID == currentID {
		return confirmedReceipt(), nil
	}

	targetIdx := -1
	for i := range s.users {
		if s.users[i].ID == targetID {
			targetIdx = i
			break
		}
	}
	if targetIdx == -1 {
		return confirmedReceipt(), models.NewNotFoundError("User", targetID)
	}

	// Idempotence: check the current user's side of the edge.
	if s.current.IsFollowing(targetID) == follow {
		return confirmedReceipt(), nil
	}

	updated := make([]models.User, len(s.users))
	for i, u := range s.users {
		c := u.Clone()
		switch c.ID {
		case targetID:
			if follow {
				c.Followers = addToSet(c.Followers, currentID)
			} else {
				c.Followers = removeFromSet(c.Followers, currentID)
			}
		case currentID:
			if follow {
				c.Following = addToSet(c.Following, targetID)
			} else {
				c.Following = removeFromSet(c.Following, targetID)
			}
		}
		updated[i] = c
	}
	s.users = updated
	s.rederiveCurrentLocked()

	return s.enqueueUsersLocked(), nil
}

// UpdateProfile replaces the current user's bio on both the current-user
// reference and its entry in the roster.
func (s *UserStore) UpdateProfile(bio string) (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return confirmedReceipt(), models.NewUnauthorizedError("You must be logged in to edit your profile")
	}

	updated := make([]models.User, len(s.users))
	for i, u := range s.users {
		c := u.Clone()
		if c.ID == s.current.ID {
			c.Bio = bio
		}
		updated[i] = c
	}
	s.users = updated
	s.rederiveCurrentLocked()
	if s.current != nil {
		s.current.Bio = bio
	}

	return s.enqueueUsersLocked(), nil
}

// rederiveCurrentLocked refreshes the current-user reference from the updated
// roster so it never goes stale after a roster mutation.
func (s *UserStore) rederiveCurrentLocked() {
	if s.current == nil {
		return
	}
	for _, u := range s.users {
		if u.ID == s.current.ID {
			cloned := u.Clone()
			s.current = &cloned
			return
		}
	}
}

// enqueueUsersLocked mirrors both the roster and the current-user blob.
func (s *UserStore) enqueueUsersLocked() *Receipt {
	writes := make([]kvWrite, 0, 2)
	if blob, err := encodeUserSnapshot(s.users); err == nil {
		writes = append(writes, kvWrite{Key: usersKey, Value: blob})
	} else {
		s.logger.Error("encoding user snapshot failed", "error", err)
	}
	if s.current != nil {
		if blob, err := json.Marshal(*s.current); err == nil {
			writes = append(writes, kvWrite{Key: currentUserKey, Value: blob})
		} else {
			s.logger.Error("encoding current user failed", "error", err)
		}
	}
	return s.persister.enqueue(writes...)
}

func (s *UserStore) enqueueCurrentUserLocked() *Receipt {
	blob, err := json.Marshal(*s.current)
	if err != nil {
		s.logger.Error("encoding current user failed", "error", err)
		r := newReceipt()
		r.resolve(err)
		return r
	}
	return s.persister.enqueue(kvWrite{Key: currentUserKey, Value: blob})
}

// Close drains pending snapshot writes.
func (s *UserStore) Close() {
	s.persister.close()
}

func addToSet(set []string, id string) []string {
	for _, v := range set {
		if v == id {
			return set
		}
	}
	return append(set, id)
}

func removeFromSet(set []string, id string) []string {
	out := set[:0]
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
