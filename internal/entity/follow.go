package entity

// Follow is directional: "A follows B" inserts following_user_id=B,
// followed_user_id=A. A row with both ids equal must never be created; the
// domain rejects self-follows, the schema does not.
type Follow struct {
	FollowingUserID int64 `gorm:"primaryKey"`
	FollowingUser   User  `gorm:"foreignKey:FollowingUserID;constraint:OnDelete:CASCADE"`

	FollowedUserID int64 `gorm:"primaryKey"`
	FollowedUser   User  `gorm:"foreignKey:FollowedUserID;constraint:OnDelete:CASCADE"`
}
