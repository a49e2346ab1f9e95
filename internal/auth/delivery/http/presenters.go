package http

import (
	"time"

	"skylift/internal/auth"
	"skylift/internal/model"
)

// --- Request DTOs ---

type credentialsReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r credentialsReq) toRegisterInput() auth.RegisterInput {
	return auth.RegisterInput{Email: r.Email, Password: r.Password}
}

func (r credentialsReq) toLoginInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type createTokenReq struct {
	Name string `json:"name"`
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userResp  `json:"user"`
}

type tokenResp struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
}

type createTokenResp struct {
	Token     tokenResp `json:"token"`
	Plaintext string    `json:"plaintext"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      h.newUserResp(out.User),
	}
}

func (h *handler) newTokenResp(t model.APIToken) tokenResp {
	return tokenResp{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, LastUsed: t.LastUsed}
}

func (h *handler) newCreateTokenResp(out auth.CreateTokenOutput) createTokenResp {
	return createTokenResp{Token: h.newTokenResp(out.Token), Plaintext: out.Plaintext}
}

func (h *handler) newTokenListResp(ts []model.APIToken) []tokenResp {
	out := make([]tokenResp, 0, len(ts))
	for _, t := range ts {
		out = append(out, h.newTokenResp(t))
	}
	return out
}
