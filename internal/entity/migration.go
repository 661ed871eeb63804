package entity

// Migration tracks the latest applied migration version.
type Migration struct {
	ID      int64 `gorm:"primaryKey"`
	Version int
}
