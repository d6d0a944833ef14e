package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email          string `gorm:"uniqueIndex;not null"`
    Password       string `gorm:"not null"`
    FullName       string
    ProfilePicture string
    ResetToken     string
    ResetTokenExp  time.Time
}
