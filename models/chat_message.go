package models

import "time"

// ChatMessage is one turn of the coach conversation.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Role      string    `gorm:"size:16;not null"` // "user" | "assistant"
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time
}
