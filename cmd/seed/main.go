// Command seed resets local storage and fills it with the built-in sample
// dataset plus optional faker-generated demo users and posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"ripple/internal/config"
	"ripple/internal/seed"
	"ripple/internal/storage"
	"ripple/internal/store"
)

func main() {
	extraUsers := flag.Int("users", 0, "number of demo users to generate on top of the sample roster")
	extraPosts := flag.Int("posts", 0, "number of demo posts to generate")
	seedVal := flag.Int64("seed", time.Now().UnixNano(), "faker seed (fixed value gives reproducible data)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var kv storage.KV
	switch cfg.StorageDriver {
	case "sqlite":
		kv, err = storage.OpenSQLite(cfg.StoragePath)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
	case "redis":
		kv = storage.OpenRedis(cfg.RedisURL)
	default:
		log.Fatalf("Storage driver %q cannot be seeded", cfg.StorageDriver)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Printf("Closing storage: %v", err)
		}
	}()

	users := seed.Users()
	posts := seed.Posts()

	factory := seed.NewFactory(*seedVal)
	for i := 0; i < *extraUsers; i++ {
		users = append(users, factory.User())
	}
	for i := 0; i < *extraPosts; i++ {
		author := users[i%len(users)]
		post := factory.Post(author, 90)
		if i%3 == 0 {
			commenter := users[(i+1)%len(users)]
			post.Comments = append(post.Comments, factory.Comment(post, commenter))
		}
		posts = append(posts, post)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.WriteSeed(ctx, kv, users, posts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Seeded %d users and %d posts (%s storage)\n", len(users), len(posts), cfg.StorageDriver)
}
