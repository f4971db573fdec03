package store

import (
	"context"
	"encoding/json"
	"fmt"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// WriteSeed replaces the persisted snapshots with the given dataset and makes
// the first user the current user. Used by the seed command; running stores
// pick the new state up on their next load.
func WriteSeed(ctx context.Context, kv storage.KV, users []models.User, posts []models.Post) error {
	if len(users) == 0 {
		return fmt.Errorf("seed dataset needs at least one user")
	}

	usersBlob, err := encodeUserSnapshot(users)
	if err != nil {
		return err
	}
	postsBlob, err := encodePostSnapshot(posts)
	if err != nil {
		return err
	}
	currentBlob, err := json.Marshal(users[0])
	if err != nil {
		return err
	}

	if err := kv.Set(ctx, usersKey, usersBlob); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	if err := kv.Set(ctx, currentUserKey, currentBlob); err != nil {
		return fmt.Errorf("write current user: %w", err)
	}
	if err := kv.Set(ctx, postsKey, postsBlob); err != nil {
		return fmt.Errorf("write posts: %w", err)
	}
	return nil
}
