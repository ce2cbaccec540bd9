package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Role     string `json:"role"` // see internal/auth for the closed role set

	// Password-reset flow; the token is single-use and expires.
	ResetToken        string    `json:"-"`
	ResetTokenExpires time.Time `json:"-"`
}
