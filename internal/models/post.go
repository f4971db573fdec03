// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a post in the Ripple feed.
//
// Username and UserAvatar are a snapshot of the author at creation time and are
// not updated if the author later edits their profile.
type Post struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	UserAvatar string    `json:"userAvatar"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	// Likes tracks the cardinality of LikedBy. Records persisted before the
	// like-set existed may carry a counter with no set members.
	Likes    int       `json:"likes"`
	LikedBy  []string  `json:"likedBy"`
	Comments []Comment `json:"comments"`
	Image    string    `json:"image,omitempty"`
}

// LikedByUser reports whether the given user ID has liked the post.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the post, including its like-set and comments.
// Empty collections stay non-nil so they serialize as [] rather than null.
func (p Post) Clone() Post {
	out := p
	out.LikedBy = make([]string, len(p.LikedBy))
	copy(out.LikedBy, p.LikedBy)
	out.Comments = make([]Comment, len(p.Comments))
	copy(out.Comments, p.Comments)
	return out
}

// Comment is a single comment on a post. Comments are immutable once created
// and are kept in append order.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
