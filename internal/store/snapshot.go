package store

import (
	"bytes"
	"encoding/json"

	"ripple/internal/models"
)

// Storage keys for the three persisted blobs.
const (
	usersKey       = "users"
	currentUserKey = "currentUser"
	postsKey       = "posts"
)

// Snapshot envelope versions. Version bumps happen when a record gains a
// field that needs defaulting on load; the upgrade is applied once, at load
// time, and is one-way.
const (
	userSnapshotVersion = 1
	// Version 2 added the likedBy set to posts.
	postSnapshotVersion = 2
)

type userSnapshot struct {
	Version int           `json:"version"`
	Users   []models.User `json:"users"`
}

type postSnapshot struct {
	Version int           `json:"version"`
	Posts   []models.Post `json:"posts"`
}

func encodeUserSnapshot(users []models.User) ([]byte, error) {
	return json.Marshal(userSnapshot{Version: userSnapshotVersion, Users: users})
}

func decodeUserSnapshot(raw []byte) ([]models.User, error) {
	// Legacy snapshots are a bare array without an envelope.
	if isBareArray(raw) {
		var users []models.User
		if err := json.Unmarshal(raw, &users); err != nil {
			return nil, err
		}
		return upgradeUsers(users), nil
	}
	var snap userSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return upgradeUsers(snap.Users), nil
}

func encodePostSnapshot(posts []models.Post) ([]byte, error) {
	return json.Marshal(postSnapshot{Version: postSnapshotVersion, Posts: posts})
}

func decodePostSnapshot(raw []byte) ([]models.Post, error) {
	if isBareArray(raw) {
		var posts []models.Post
		if err := json.Unmarshal(raw, &posts); err != nil {
			return nil, err
		}
		return upgradePosts(posts), nil
	}
	var snap postSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return upgradePosts(snap.Posts), nil
}

func isBareArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// upgradeUsers defaults absent edge sets so every loaded user satisfies the
// set invariants.
func upgradeUsers(users []models.User) []models.User {
	for i := range users {
		if users[i].Followers == nil {
			users[i].Followers = []string{}
		}
		if users[i].Following == nil {
			users[i].Following = []string{}
		}
	}
	return users
}

// upgradePosts defaults fields that predate the current snapshot version.
// Records written before the like-set existed keep their likes counter and
// comments but get an empty likedBy.
func upgradePosts(posts []models.Post) []models.Post {
	for i := range posts {
		if posts[i].LikedBy == nil {
			posts[i].LikedBy = []string{}
		}
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
		if posts[i].Likes < 0 {
			posts[i].Likes = 0
		}
	}
	return posts
}
