package entity

import "time"

// Bookmark is a saved link. UserID is the owner; every read-by-id, change or
// removal of a bookmark is gated on it.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnerID returns the identifier of the user owning the bookmark.
func (b *Bookmark) OwnerID() int64 {
	return b.UserID
}
