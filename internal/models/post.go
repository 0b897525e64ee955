package models

import (
	"time"

	"github.com/google/uuid"
)

// Post categories
const (
	CategoryLost  = "lost"
	CategoryFound = "found"
)

// PostDB represents a lost or found item listing.
// AuthorName and AuthorEmail are a snapshot of the author taken at creation time.
type PostDB struct {
	PostID      uuid.UUID `json:"id" db:"post_id"`
	ItemName    string    `json:"itemName" db:"item_name"`
	Description string    `json:"description" db:"description"`
	Question    string    `json:"question,omitempty" db:"question"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	AuthorID    uuid.UUID `json:"userId" db:"author_id"`
	AuthorName  string    `json:"userName" db:"author_name"`
	AuthorEmail string    `json:"userEmail" db:"author_email"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// PostSummary is the part of a post joined into response queues.
// It is nil in a response view when the post has been deleted.
type PostSummary struct {
	PostID   uuid.UUID `json:"id"`
	ItemName string    `json:"itemName"`
	Category string    `json:"category"`
}

// PostFilter narrows the feed. Nil fields do not filter.
type PostFilter struct {
	Category *string
	Search   *string
}

// IsEmpty reports whether the filter selects the whole feed.
func (f PostFilter) IsEmpty() bool {
	return f.Category == nil && f.Search == nil
}
