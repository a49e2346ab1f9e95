package auth

import (
	"time"

	"skylift/internal/model"
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

type CreateTokenOutput struct {
	Token model.APIToken
	// Plaintext is shown exactly once.
	Plaintext string
}
