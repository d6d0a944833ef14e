package models

import "time"

// RefreshSession backs the silent session-restore flow. The client keeps the
// opaque token; only its hash is stored here. A session is single-use: each
// successful refresh rotates it.
type RefreshSession struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	TokenHash string    `gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
