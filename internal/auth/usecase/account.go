package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"skylift/internal/auth"
	"skylift/internal/auth/repository"
	"skylift/internal/model"
	"skylift/pkg/scope"
)

const minPasswordLen = 8

// Register creates a platform account with a bcrypt password hash.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, auth.ErrInvalidCredentials
	}
	if len(input.Password) < minPasswordLen {
		return model.User{}, auth.ErrWeakPassword
	}

	existing, err := uc.repo.GetUser(ctx, repository.GetUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Register.GetUser: %v", err)
		return model.User{}, err
	}
	if existing.ID != "" {
		return model.User{}, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.cfg.BcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Register.bcrypt: %v", err)
		return model.User{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Register.CreateUser: %v", err)
		return model.User{}, err
	}

	uc.l.Infof(ctx, "registered account %s", u.ID)
	return u, nil
}

// Login exchanges email+password for a session JWT.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := uc.repo.GetUser(ctx, repository.GetUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Login.GetUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if u.ID == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.scopeManager.Issue(scope.Payload{UserID: u.ID, Email: u.Email})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Login.Issue: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token:     token,
		ExpiresAt: time.Now().Add(uc.cfg.JWTExpire),
		User:      u,
	}, nil
}

// WhoAmI resolves the caller's account from their scope.
func (uc *implUseCase) WhoAmI(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetUser(ctx, repository.GetUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.WhoAmI.GetUser: %v", err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, auth.ErrUserNotFound
	}
	return u, nil
}
