package models

import "gorm.io/gorm"

// User is an admin account. The site has a single editor; the row is seeded
// from configuration on startup if missing.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'admin'"`
}
