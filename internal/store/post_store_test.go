package store

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"ripple/internal/models"
	"ripple/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStores(t *testing.T) (*UserStore, *PostStore, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	users := NewUserStore(kv, testLogger())
	users.Load(context.Background())
	posts := NewPostStore(kv, users, testLogger())
	posts.Load(context.Background())
	t.Cleanup(func() {
		posts.Close()
		users.Close()
	})
	return users, posts, kv
}

func TestPostStore_LoadSeedsWhenEmpty(t *testing.T) {
	_, s, kv := newTestStores(t)

	posts := s.Posts()
	require.NotEmpty(t, posts)

	_, found, err := kv.Get(context.Background(), "posts")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestPostStore_CreatePrependsPost(t *testing.T) {
	_, s, _ := newTestStores(t)

	post, receipt, err := s.Create("hello", "")
	require.NoError(t, err)
	require.NoError(t, receipt.Err())

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "alice", post.Username)
	assert.Equal(t, 0, post.Likes)
	assert.Empty(t, post.LikedBy)
	assert.Empty(t, post.Comments)

	feed := s.Posts()
	assert.Equal(t, post.ID, feed[0].ID)
}

func TestPostStore_CreateBounds(t *testing.T) {
	_, s, _ := newTestStores(t)

	// 280 characters is fine, 281 is not.
	_, _, err := s.Create(strings.Repeat("a", 280), "")
	assert.NoError(t, err)

	_, _, err = s.Create(strings.Repeat("a", 281), "")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestPostStore_CreateBoundCountsRunes(t *testing.T) {
	_, s, _ := newTestStores(t)

	// 280 multi-byte runes are within the bound even though the byte
	// length is far larger.
	_, _, err := s.Create(strings.Repeat("é", 280), "")
	assert.NoError(t, err)
}

func TestPostStore_CreateWithoutCurrentUser(t *testing.T) {
	users, s, _ := newTestStores(t)
	_, err := users.SetCurrentUser("")
	require.NoError(t, err)

	_, _, err = s.Create("hello", "")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestPostStore_CreateSnapshotsAuthor(t *testing.T) {
	users, s, _ := newTestStores(t)

	post, _, err := s.Create("hello", "")
	require.NoError(t, err)

	// Editing the profile later must not rewrite the post attribution.
	_, err = users.UpdateProfile("changed")
	require.NoError(t, err)

	feed := s.Posts()
	assert.Equal(t, post.UserAvatar, feed[0].UserAvatar)
	assert.Equal(t, "alice", feed[0].Username)
}

func TestPostStore_LikeUnlikeCycle(t *testing.T) {
	users, s, _ := newTestStores(t)

	post, _, err := s.Create("hello", "")
	require.NoError(t, err)

	_, err = users.SetCurrentUser("bob")
	require.NoError(t, err)

	// Like.
	receipt, err := s.Like(post.ID)
	require.NoError(t, err)
	require.NoError(t, receipt.Err())
	got := s.Posts()[0]
	assert.Equal(t, 1, got.Likes)
	assert.Equal(t, []string{"u2"}, got.LikedBy)
	assert.True(t, s.IsLiked(post.ID))

	// Double-like is a no-op.
	_, err = s.Like(post.ID)
	require.NoError(t, err)
	got = s.Posts()[0]
	assert.Equal(t, 1, got.Likes)
	assert.Equal(t, []string{"u2"}, got.LikedBy)

	// Unlike.
	receipt, err = s.Unlike(post.ID)
	require.NoError(t, err)
	require.NoError(t, receipt.Err())
	got = s.Posts()[0]
	assert.Equal(t, 0, got.Likes)
	assert.Empty(t, got.LikedBy)
	assert.False(t, s.IsLiked(post.ID))

	// Unlike when not liked is a no-op.
	_, err = s.Unlike(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Posts()[0].Likes)
}

func TestPostStore_LikesTrackLikeSet(t *testing.T) {
	users, s, _ := newTestStores(t)

	post, _, err := s.Create("hello", "")
	require.NoError(t, err)

	for _, username := range []string{"alice", "bob", "nature_lover"} {
		_, err = users.SetCurrentUser(username)
		require.NoError(t, err)
		_, err = s.Like(post.ID)
		require.NoError(t, err)
	}

	for _, p := range s.Posts() {
		assert.Equal(t, len(p.LikedBy), p.Likes, "post %s", p.ID)
	}
}

func TestPostStore_LikeUnknownPost(t *testing.T) {
	_, s, _ := newTestStores(t)

	_, err := s.Like("nope")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostStore_LikeWithoutCurrentUser(t *testing.T) {
	users, s, _ := newTestStores(t)
	post, _, err := s.Create("hello", "")
	require.NoError(t, err)
	_, err = users.SetCurrentUser("")
	require.NoError(t, err)

	_, err = s.Like(post.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	assert.False(t, s.IsLiked(post.ID))
}

func TestPostStore_AddCommentAppends(t *testing.T) {
	users, s, _ := newTestStores(t)

	post, _, err := s.Create("hello", "")
	require.NoError(t, err)

	first, _, err := s.AddComment(post.ID, "first")
	require.NoError(t, err)
	_, err = users.SetCurrentUser("bob")
	require.NoError(t, err)
	second, receipt, err := s.AddComment(post.ID, "second")
	require.NoError(t, err)
	require.NoError(t, receipt.Err())

	got := s.Posts()[0]
	require.Len(t, got.Comments, 2)
	assert.Equal(t, first.ID, got.Comments[0].ID)
	assert.Equal(t, second.ID, got.Comments[1].ID)
	assert.Equal(t, "bob", got.Comments[1].Username)
	assert.Equal(t, post.ID, got.Comments[1].PostID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPostStore_AddCommentUnknownPost(t *testing.T) {
	_, s, _ := newTestStores(t)

	_, _, err := s.AddComment("nope", "text")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostStore_GetByAuthor(t *testing.T) {
	_, s, _ := newTestStores(t)

	first, _, err := s.Create("one", "")
	require.NoError(t, err)
	second, _, err := s.Create("two", "")
	require.NoError(t, err)

	posts := s.GetByAuthor("alice")
	require.GreaterOrEqual(t, len(posts), 2)
	// Feed order: most recent first.
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)

	assert.Empty(t, s.GetByAuthor("nobody"))
}

func TestPostStore_RefreshReplacesCollection(t *testing.T) {
	users, s, kv := newTestStores(t)

	post, receipt, err := s.Create("hello", "")
	require.NoError(t, err)
	require.NoError(t, receipt.Err())

	// A second store over the same storage does not see the post until it
	// refreshes.
	other := NewPostStore(kv, users, testLogger())
	other.Load(context.Background())
	defer other.Close()

	other.Refresh(context.Background())
	assert.Equal(t, post.ID, other.Posts()[0].ID)
}

func TestPostStore_RoundTrip(t *testing.T) {
	users, s, kv := newTestStores(t)

	post, _, err := s.Create("hello", "")
	require.NoError(t, err)
	_, err = users.SetCurrentUser("bob")
	require.NoError(t, err)
	_, err = s.Like(post.ID)
	require.NoError(t, err)
	_, receipt, err := s.AddComment(post.ID, "nice")
	require.NoError(t, err)
	require.NoError(t, receipt.Err())

	reloaded := NewPostStore(kv, users, testLogger())
	reloaded.Load(context.Background())
	defer reloaded.Close()

	want, err := json.Marshal(s.Posts())
	require.NoError(t, err)
	got, err := json.Marshal(reloaded.Posts())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestPostStore_LoadUpgradesLegacySnapshot(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	// A legacy snapshot is a bare array whose records predate likedBy.
	legacy := []map[string]any{
		{
			"id":        "old1",
			"username":  "alice",
			"text":      "from before the like-set",
			"timestamp": "2023-01-02T03:04:05Z",
			"likes":     7,
			"comments": []map[string]any{
				{"id": "oc1", "postId": "old1", "username": "bob", "text": "hi", "timestamp": "2023-01-02T04:00:00Z"},
			},
		},
	}
	blob, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "posts", blob))

	users := NewUserStore(kv, testLogger())
	users.Load(ctx)
	defer users.Close()
	s := NewPostStore(kv, users, testLogger())
	s.Load(ctx)
	defer s.Close()

	posts := s.Posts()
	require.Len(t, posts, 1)
	got := posts[0]
	assert.Equal(t, "old1", got.ID)
	assert.Equal(t, 7, got.Likes)
	assert.NotNil(t, got.LikedBy)
	assert.Empty(t, got.LikedBy)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "oc1", got.Comments[0].ID)
}

func TestPostStore_ReceiptFailsWhenStorageDown(t *testing.T) {
	inner := storage.NewMemoryKV()
	kv := &failingKV{KV: inner}
	users := NewUserStore(kv, testLogger())
	users.Load(context.Background())
	defer users.Close()
	s := NewPostStore(kv, users, testLogger())
	s.Load(context.Background())
	defer s.Close()

	kv.failSet = true
	post, receipt, err := s.Create("hello", "")
	require.NoError(t, err)
	assert.Error(t, receipt.Err())

	// The post is visible in memory even though durability failed.
	assert.Equal(t, post.ID, s.Posts()[0].ID)
}
