package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/seed"
	"ripple/internal/storage"

	"github.com/google/uuid"
)

// MaxPostLength is the rune bound on post text.
const MaxPostLength = 280

// currentUserSource is the slice of UserStore the PostStore depends on: it
// reads the acting identity when attributing posts, likes, and comments, and
// never mutates user records.
type currentUserSource interface {
	CurrentUser() (models.User, bool)
}

// PostStore owns the roster of posts, each with its embedded comments and
// like-set. Posts are kept most-recent-first.
type PostStore struct {
	mu        sync.RWMutex
	kv        storage.KV
	users     currentUserSource
	logger    *slog.Logger
	persister *persister
	posts     []models.Post
}

// NewPostStore creates a PostStore bound to the given storage and user
// identity source. Call Load before using it.
func NewPostStore(kv storage.KV, users currentUserSource, logger *slog.Logger) *PostStore {
	return &PostStore{
		kv:        kv,
		users:     users,
		logger:    logger,
		persister: newPersister(kv, logger),
	}
}

// Load populates the store from the persisted snapshot, upgrading legacy
// records in place. On absence or failure it seeds the built-in sample posts.
// Load never reports an error to the caller.
func (s *PostStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, postsKey)
	if err == nil && ok {
		posts, decodeErr := decodePostSnapshot(raw)
		if decodeErr == nil {
			s.posts = posts
			observability.SnapshotLoads.WithLabelValues(postsKey, "stored").Inc()
			return
		}
		err = decodeErr
	}
	if err != nil {
		s.logger.Error("loading posts failed, seeding defaults", "error", err)
	}

	s.posts = seed.Posts()
	observability.SnapshotLoads.WithLabelValues(postsKey, "seed").Inc()
	if blob, encErr := encodePostSnapshot(s.posts); encErr == nil {
		if setErr := s.kv.Set(ctx, postsKey, blob); setErr != nil {
			s.logger.Error("persisting seeded posts failed", "error", setErr)
		}
	}
}

// Refresh replaces the in-memory collection wholesale with the freshly loaded
// persisted state. Writes queued before the call are applied first, so a
// refresh never loses the caller's own mutations.
func (s *PostStore) Refresh(ctx context.Context) {
	s.persister.flush()
	s.Load(ctx)
}

// Posts returns a copy of the full feed, most-recent-first.
func (s *PostStore) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// GetByAuthor returns the posts authored under the given handle, in feed
// order.
func (s *PostStore) GetByAuthor(username string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Post
	for _, p := range s.posts {
		if p.Username == username {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Create prepends a new post attributed to the current user. Text is bounded
// to MaxPostLength runes; image is an optional media reference.
func (s *PostStore) Create(text, image string) (models.Post, *Receipt, error) {
	current, ok := s.users.CurrentUser()
	if !ok {
		return models.Post{}, confirmedReceipt(), models.NewUnauthorizedError("You must be logged in to post")
	}
	if utf8.RuneCountInString(text) > MaxPostLength {
		return models.Post{}, confirmedReceipt(), models.NewValidationError("Post cannot exceed 280 characters")
	}

	post := models.Post{
		ID:         uuid.NewString(),
		Username:   current.Username,
		UserAvatar: current.Avatar,
		Text:       text,
		Timestamp:  time.Now().UTC(),
		Likes:      0,
		LikedBy:    []string{},
		Comments:   []models.Comment{},
		Image:      image,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{post}, s.posts...)
	return post.Clone(), s.enqueuePostsLocked(), nil
}

// Like adds the current user to the post's like-set. Liking a post twice
// changes nothing.
func (s *PostStore) Like(postID string) (*Receipt, error) {
	current, ok := s.users.CurrentUser()
	if !ok {
		return confirmedReceipt(), models.NewUnauthorizedError("You must be logged in to like posts")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(postID)
	if idx == -1 {
		return confirmedReceipt(), models.NewNotFoundError("Post", postID)
	}
	if s.posts[idx].LikedByUser(current.ID) {
		return confirmedReceipt(), nil
	}

	p := s.posts[idx].Clone()
	p.LikedBy = append(p.LikedBy, current.ID)
	p.Likes++
	s.posts[idx] = p

	return s.enqueuePostsLocked(), nil
}

// Unlike removes the current user from the post's like-set. Unliking a post
// that is not liked changes nothing.
func (s *PostStore) Unlike(postID string) (*Receipt, error) {
	current, ok := s.users.CurrentUser()
	if !ok {
		return confirmedReceipt(), models.NewUnauthorizedError("You must be logged in to like posts")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(postID)
	if idx == -1 {
		return confirmedReceipt(), models.NewNotFoundError("Post", postID)
	}
	if !s.posts[idx].LikedByUser(current.ID) {
		return confirmedReceipt(), nil
	}

	p := s.posts[idx].Clone()
	p.LikedBy = removeFromSet(p.LikedBy, current.ID)
	// Floor at zero; unreachable while likes tracks the like-set, but
	// legacy counters predate the set.
	if p.Likes--; p.Likes < 0 {
		p.Likes = 0
	}
	s.posts[idx] = p

	return s.enqueuePostsLocked(), nil
}

// IsLiked reports whether the current user likes the post. False when there
// is no current user or no such post.
func (s *PostStore) IsLiked(postID string) bool {
	current, ok := s.users.CurrentUser()
	if !ok {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(postID)
	if idx == -1 {
		return false
	}
	return s.posts[idx].LikedByUser(current.ID)
}

// AddComment appends a comment by the current user to the post. Comments are
// immutable once created; blank text is the caller's concern.
func (s *PostStore) AddComment(postID, text string) (models.Comment, *Receipt, error) {
	current, ok := s.users.CurrentUser()
	if !ok {
		return models.Comment{}, confirmedReceipt(), models.NewUnauthorizedError("You must be logged in to comment")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(postID)
	if idx == -1 {
		return models.Comment{}, confirmedReceipt(), models.NewNotFoundError("Post", postID)
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Username:  current.Username,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	p := s.posts[idx].Clone()
	p.Comments = append(p.Comments, comment)
	s.posts[idx] = p

	return comment, s.enqueuePostsLocked(), nil
}

func (s *PostStore) indexLocked(postID string) int {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			return i
		}
	}
	return -1
}

func (s *PostStore) enqueuePostsLocked() *Receipt {
	blob, err := encodePostSnapshot(s.posts)
	if err != nil {
		s.logger.Error("encoding post snapshot failed", "error", err)
		r := newReceipt()
		r.resolve(err)
		return r
	}
	return s.persister.enqueue(kvWrite{Key: postsKey, Value: blob})
}

// Close drains pending snapshot writes.
func (s *PostStore) Close() {
	s.persister.close()
}
