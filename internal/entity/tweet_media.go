package entity

import "database/sql"

// TweetMedia is created unattached by the upload endpoint. TweetID is filled
// in when a tweet referencing the media is created.
type TweetMedia struct {
	ID      int64         `gorm:"primaryKey"`
	Image   string        `gorm:"not null"`
	TweetID sql.NullInt64 `gorm:"index"`
}
