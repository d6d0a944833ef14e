package models

import (
    "time"

    "gorm.io/gorm"
)

// Workout is one logged workout session. CaloriesBurned is computed at
// capture time from duration and the per-activity burn rate, never
// recomputed afterwards.
type Workout struct {
    gorm.Model
    UserID          uint   `gorm:"index;not null"`
    Activity        string `gorm:"size:16;not null"` // run|cycle|swim|weights|yoga|hiit
    Name            string
    DurationSeconds int       `gorm:"not null"` // > 0
    CaloriesBurned  int       `gorm:"not null"` // kcal, >= 0
    LoggedAt        time.Time `gorm:"index;not null"`
}
