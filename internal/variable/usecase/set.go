package usecase

import (
	"bytes"
	"context"
	"regexp"

	"github.com/joho/godotenv"

	"skylift/internal/model"
	"skylift/internal/variable"
	repo "skylift/internal/variable/repository"
)

var validKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Set upserts user variables after ownership and name checks. The whole
// batch is validated before anything is written so a bad key rejects the
// request without partial effect.
func (uc *implUseCase) Set(ctx context.Context, sc model.Scope, input variable.SetInput) (variable.SetOutput, error) {
	if len(input.Pairs) == 0 {
		return variable.SetOutput{}, variable.ErrEmptyInput
	}

	if _, err := uc.projects.GetOwned(ctx, sc, input.ProjectID); err != nil {
		return variable.SetOutput{}, err
	}

	for key := range input.Pairs {
		if !validKey.MatchString(key) {
			return variable.SetOutput{}, variable.ErrInvalidKey
		}
		if model.ReservedVariables[key] {
			return variable.SetOutput{}, variable.ErrReservedKey
		}
	}

	updated := 0
	for key, value := range input.Pairs {
		if _, err := uc.repo.Upsert(ctx, repo.UpsertOptions{
			ProjectID: input.ProjectID,
			Key:       key,
			Value:     value,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.Set Upsert %s: %v", key, err)
			return variable.SetOutput{}, err
		}
		updated++
	}

	return variable.SetOutput{Updated: updated}, nil
}

// SetFromDotenv parses dotenv content and applies it through Set.
func (uc *implUseCase) SetFromDotenv(ctx context.Context, sc model.Scope, projectID string, content []byte) (variable.SetOutput, error) {
	pairs, err := godotenv.Parse(bytes.NewReader(content))
	if err != nil {
		uc.l.Warnf(ctx, "uc.SetFromDotenv parse: %v", err)
		return variable.SetOutput{}, variable.ErrBadDotenv
	}
	if len(pairs) == 0 {
		return variable.SetOutput{}, variable.ErrEmptyInput
	}

	return uc.Set(ctx, sc, variable.SetInput{ProjectID: projectID, Pairs: pairs})
}

// SetInjected publishes a platform-owned variable, bypassing scope and
// reserved-name checks. Only sibling domains call this.
func (uc *implUseCase) SetInjected(ctx context.Context, projectID, key, value string) error {
	if _, err := uc.repo.Upsert(ctx, repo.UpsertOptions{
		ProjectID: projectID,
		Key:       key,
		Value:     value,
		Injected:  true,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.SetInjected Upsert %s: %v", key, err)
		return err
	}
	return nil
}
