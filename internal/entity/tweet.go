package entity

type Tweet struct {
	Base
	Content string `gorm:"not null"`

	AuthorID int64 `gorm:"not null"`
	Author   User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`

	Medias []TweetMedia `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
	Likes  []Like       `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
}
