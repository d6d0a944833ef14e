package models

import (
    "gorm.io/gorm"
)

// DailyGoal holds a user's daily calorie-intake target. One row per user.
type DailyGoal struct {
    gorm.Model
    UserID   uint `gorm:"uniqueIndex;not null"`
    Calories int  // e.g. 2200 kcal
}
