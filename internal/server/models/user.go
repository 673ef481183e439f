package models

import "time"

// User is an account record. The password hash never leaves the server:
// it is excluded from JSON serialization.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
