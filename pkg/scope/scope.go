package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Payload is the identity carried inside an access token.
type Payload struct {
	UserID string
	Email  string
}

// Manager issues and verifies HS256 access tokens.
type Manager struct {
	secret []byte
	expire time.Duration
}

// NewManager creates a token Manager. expire bounds token lifetime.
func NewManager(secret string, expire time.Duration) Manager {
	return Manager{secret: []byte(secret), expire: expire}
}

// Issue signs a new token for the given payload.
func (m Manager) Issue(p Payload) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   p.UserID,
		"email": p.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.expire).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string, returning its payload.
func (m Manager) Verify(tokenStr string) (Payload, error) {
	if tokenStr == "" {
		return Payload{}, ErrMissingToken
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrTokenExpired
		}
		return Payload{}, ErrInvalidToken
	}
	if !tok.Valid {
		return Payload{}, ErrInvalidToken
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}

	p := Payload{}
	if sub, ok := mc["sub"].(string); ok {
		p.UserID = sub
	}
	if email, ok := mc["email"].(string); ok {
		p.Email = email
	}
	if p.UserID == "" {
		return Payload{}, ErrInvalidToken
	}
	return p, nil
}
