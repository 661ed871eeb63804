package entity

type User struct {
	Base
	Name   string `gorm:"not null"`
	APIKey string `gorm:"uniqueIndex;not null"`
}
