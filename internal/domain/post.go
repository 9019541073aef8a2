package domain

import "time"

// Post is a feed entry authored by a user. Tracked here only because deleting
// a user must cascade to their posts.
type Post struct {
	ID        string    `json:"id" db:"id"`
	AuthorID  int       `json:"author_id" db:"author_id"`
	Caption   string    `json:"caption" db:"caption"`
	Likes     int       `json:"likes" db:"likes"`
	Comments  int       `json:"comments" db:"comments"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
