package entity

// Like has a composite key, so a (user, tweet) pair is liked at most once at
// the storage layer. A second attempt surfaces as a duplicated-key error.
type Like struct {
	UserID int64 `gorm:"primaryKey"`
	User   User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	TweetID int64 `gorm:"primaryKey"`
}
