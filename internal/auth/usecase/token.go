package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skylift/internal/auth"
	"skylift/internal/auth/repository"
	"skylift/internal/model"
	"skylift/pkg/namegen"
)

// tokenPrefix distinguishes personal access tokens from JWTs on the wire.
const tokenPrefix = "sk_"

const tokenSecretLen = 32

// CreateToken mints an "sk_<id>_<secret>" personal access token. Only
// the bcrypt hash of the secret is stored.
func (uc *implUseCase) CreateToken(ctx context.Context, sc model.Scope, name string) (auth.CreateTokenOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "cli"
	}

	secret := namegen.Suffix(tokenSecretLen)
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), uc.cfg.BcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.CreateToken.bcrypt: %v", err)
		return auth.CreateTokenOutput{}, err
	}

	t, err := uc.repo.CreateToken(ctx, repository.CreateTokenOptions{
		UserID:    sc.UserID,
		Name:      name,
		TokenHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.CreateToken: %v", err)
		return auth.CreateTokenOutput{}, err
	}

	return auth.CreateTokenOutput{
		Token:     t,
		Plaintext: fmt.Sprintf("%s%s_%s", tokenPrefix, t.ID, secret),
	}, nil
}

// ListTokens returns the caller's tokens with hashes blanked.
func (uc *implUseCase) ListTokens(ctx context.Context, sc model.Scope) ([]model.APIToken, error) {
	ts, err := uc.repo.ListTokens(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.ListTokens: %v", err)
		return nil, err
	}
	for i := range ts {
		ts[i].TokenHash = ""
	}
	return ts, nil
}

// VerifyAPIToken resolves an "sk_"-prefixed token to a scope.
func (uc *implUseCase) VerifyAPIToken(ctx context.Context, token string) (model.Scope, error) {
	if !strings.HasPrefix(token, tokenPrefix) {
		return model.Scope{}, auth.ErrInvalidAPIToken
	}

	if sc, ok := uc.tokenCache.Get(token); ok {
		return sc, nil
	}

	parts := strings.SplitN(strings.TrimPrefix(token, tokenPrefix), "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return model.Scope{}, auth.ErrInvalidAPIToken
	}
	id, secret := parts[0], parts[1]

	t, err := uc.repo.GetToken(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.VerifyAPIToken.GetToken: %v", err)
		return model.Scope{}, err
	}
	if t.ID == "" {
		return model.Scope{}, auth.ErrInvalidAPIToken
	}

	if err := bcrypt.CompareHashAndPassword([]byte(t.TokenHash), []byte(secret)); err != nil {
		return model.Scope{}, auth.ErrInvalidAPIToken
	}

	u, err := uc.repo.GetUser(ctx, repository.GetUserOptions{ID: t.UserID})
	if err != nil || u.ID == "" {
		return model.Scope{}, auth.ErrInvalidAPIToken
	}

	if err := uc.repo.TouchToken(ctx, t.ID); err != nil {
		uc.l.Warnf(ctx, "auth/usecase.VerifyAPIToken.TouchToken: %v", err)
	}

	sc := model.Scope{UserID: u.ID, Email: u.Email}
	uc.tokenCache.Add(token, sc)
	return sc, nil
}
