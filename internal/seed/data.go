// Package seed provides the built-in sample dataset used to bootstrap empty
// storage, plus factories for generating richer demo data.
package seed

import (
	"time"

	"ripple/internal/models"
)

// Users returns the built-in sample roster. The first entry doubles as the
// default current user.
func Users() []models.User {
	return []models.User{
		{
			ID:        "u1",
			Username:  "alice",
			Name:      "Alice Chen",
			Bio:       "Coffee first, code second. Building little things for the web.",
			Avatar:    "https://i.pravatar.cc/150?img=1",
			Followers: []string{},
			Following: []string{},
		},
		{
			ID:        "u2",
			Username:  "bob",
			Name:      "Bob Marwick",
			Bio:       "Weekend photographer. Mostly pictures of my dog.",
			Avatar:    "https://i.pravatar.cc/150?img=12",
			Followers: []string{},
			Following: []string{},
		},
		{
			ID:        "u3",
			Username:  "nature_lover",
			Name:      "Maya Torres",
			Bio:       "Out on a trail somewhere. 🌿",
			Avatar:    "https://i.pravatar.cc/150?img=32",
			Followers: []string{},
			Following: []string{},
		},
		{
			ID:        "u4",
			Username:  "travel_addict",
			Name:      "Jonas Keller",
			Bio:       "37 countries and counting.",
			Avatar:    "https://i.pravatar.cc/150?img=59",
			Followers: []string{},
			Following: []string{},
		},
	}
}

// DefaultCurrentUser is the identity a fresh install acts as.
func DefaultCurrentUser() models.User {
	return Users()[0]
}

// Posts returns the built-in sample feed, most-recent-first.
func Posts() []models.Post {
	return []models.Post{
		{
			ID:         "p1",
			Username:   "nature_lover",
			UserAvatar: "https://i.pravatar.cc/150?img=32",
			Text:       "Morning fog lifting off the ridge. Worth the 5am alarm.",
			Timestamp:  time.Date(2024, time.March, 18, 6, 42, 0, 0, time.UTC),
			Likes:      0,
			LikedBy:    []string{},
			Comments: []models.Comment{
				{
					ID:        "c1",
					PostID:    "p1",
					Username:  "travel_addict",
					Text:      "Which trail is this?",
					Timestamp: time.Date(2024, time.March, 18, 8, 15, 0, 0, time.UTC),
				},
			},
			Image: "https://picsum.photos/id/29/800/600",
		},
		{
			ID:         "p2",
			Username:   "bob",
			UserAvatar: "https://i.pravatar.cc/150?img=12",
			Text:       "Finally framed some of last summer's film shots.",
			Timestamp:  time.Date(2024, time.March, 17, 19, 3, 0, 0, time.UTC),
			Likes:      0,
			LikedBy:    []string{},
			Comments:   []models.Comment{},
			Image:      "https://picsum.photos/id/250/800/600",
		},
		{
			ID:         "p3",
			Username:   "alice",
			UserAvatar: "https://i.pravatar.cc/150?img=1",
			Text:       "Shipped the side project. It's small, it's slow, it's mine.",
			Timestamp:  time.Date(2024, time.March, 16, 22, 30, 0, 0, time.UTC),
			Likes:      0,
			LikedBy:    []string{},
			Comments:   []models.Comment{},
		},
		{
			ID:         "p4",
			Username:   "travel_addict",
			UserAvatar: "https://i.pravatar.cc/150?img=59",
			Text:       "Night train to Trieste. The dining car still has tablecloths.",
			Timestamp:  time.Date(2024, time.March, 15, 21, 12, 0, 0, time.UTC),
			Likes:      0,
			LikedBy:    []string{},
			Comments:   []models.Comment{},
			Image:      "https://picsum.photos/id/167/800/600",
		},
	}
}
