package entity

import "time"

// Base uses integer auto-increment ids because they are exposed to clients
// (media_id, tweet_id). There is no soft delete: deletions must really remove
// rows so cascades and file cleanup observe them.
type Base struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
