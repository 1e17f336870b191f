package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Salted bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserProfile is the public view of a user.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile strips everything but the public fields.
func (u *UserDB) Profile() *UserProfile {
	return &UserProfile{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
