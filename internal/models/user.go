package models

import "time"

// User represents application user. It is the only persisted entity:
// created once on registration, read on login and session checks,
// never updated or deleted.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:16;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
