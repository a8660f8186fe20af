package domain

import "time"

// User represents a registered account holder.
type User struct {
	UserID       int64     `json:"user_id"` // assigned sequentially at registration
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
