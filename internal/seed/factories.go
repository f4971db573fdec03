package seed

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Factory builds demo users and posts with faker content. It is intended for
// cmd/seed and development setups, not for the built-in bootstrap dataset.
type Factory struct {
	r *rand.Rand
}

// NewFactory creates a Factory. A fixed seed yields reproducible data.
func NewFactory(seedVal int64) *Factory {
	gofakeit.Seed(seedVal)
	return &Factory{r: rand.New(rand.NewSource(seedVal))}
}

// User builds a demo user with no edges.
func (f *Factory) User() models.User {
	return models.User{
		ID:        uuid.NewString(),
		Username:  gofakeit.Username(),
		Name:      gofakeit.Name(),
		Bio:       gofakeit.Quote(),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?img=%d", f.r.Intn(70)+1),
		Followers: []string{},
		Following: []string{},
	}
}

// Post builds a demo post attributed to author, with a created-at spread over
// the past maxDays days.
func (f *Factory) Post(author models.User, maxDays int) models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}
	text := gofakeit.Sentence(f.r.Intn(18) + 4)
	for utf8.RuneCountInString(text) > 280 {
		text = gofakeit.Sentence(8)
	}

	back := time.Duration(f.r.Intn(maxDays))*24*time.Hour +
		time.Duration(f.r.Intn(24))*time.Hour +
		time.Duration(f.r.Intn(60))*time.Minute

	post := models.Post{
		ID:         uuid.NewString(),
		Username:   author.Username,
		UserAvatar: author.Avatar,
		Text:       text,
		Timestamp:  time.Now().UTC().Add(-back),
		Likes:      0,
		LikedBy:    []string{},
		Comments:   []models.Comment{},
	}
	if f.r.Intn(2) == 0 {
		post.Image = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", uuid.NewString())
	}
	return post
}

// Comment builds a demo comment on the given post.
func (f *Factory) Comment(post models.Post, author models.User) models.Comment {
	return models.Comment{
		ID:        uuid.NewString(),
		PostID:    post.ID,
		Username:  author.Username,
		Text:      gofakeit.Sentence(f.r.Intn(10) + 2),
		Timestamp: post.Timestamp.Add(time.Duration(f.r.Intn(720)+1) * time.Minute),
	}
}
