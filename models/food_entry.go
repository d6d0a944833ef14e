package models

import (
    "time"

    "gorm.io/gorm"
)

// FoodEntry is one logged food item. Entries are immutable once created;
// the only mutation is deletion.
type FoodEntry struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"`
    Name     string `gorm:"not null"`
    Calories int    `gorm:"not null"` // kcal, >= 0
    PhotoURL string
    Note     string    `gorm:"type:text"`
    LoggedAt time.Time `gorm:"index;not null"`
}
