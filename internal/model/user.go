package model

import "time"

// User is a platform account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// APIToken is a personal access token for CLI/API auth.
// Only the bcrypt hash is stored; the plaintext is shown once at creation.
type APIToken struct {
	ID        string
	UserID    string
	Name      string
	TokenHash string
	CreatedAt time.Time
	LastUsed  *time.Time
}

// Scope is the per-request identity resolved by the auth middleware and
// threaded through every usecase call.
type Scope struct {
	UserID string
	Email  string
}
