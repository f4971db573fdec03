// Package models contains data structures for the application's domain models.
package models

// User represents a profile in the Ripple application.
//
// Followers and Following are sets of user IDs. An edge is always dual-sided:
// if B's ID is in A's Following then A's ID is in B's Followers.
type User struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio"`
	Avatar    string   `json:"avatar"`
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

// IsFollowing reports whether the user follows the given user ID.
func (u *User) IsFollowing(id string) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user, including its edge sets. Empty sets
// stay non-nil so they serialize as [] rather than null.
func (u User) Clone() User {
	out := u
	out.Followers = make([]string, len(u.Followers))
	copy(out.Followers, u.Followers)
	out.Following = make([]string, len(u.Following))
	copy(out.Following, u.Following)
	return out
}
