package usecase

import (
	"context"
	"strconv"
	"strings"

	"skylift/internal/model"
	"skylift/internal/variable"
)

// secretKeyHints mark variables whose values are always masked in listings.
var secretKeyHints = []string{"SECRET", "KEY", "TOKEN", "PASSWORD", "URL", "DSN"}

// List returns the project's variables with secret-looking values masked.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, projectID string) (variable.ListOutput, error) {
	if _, err := uc.projects.GetOwned(ctx, sc, projectID); err != nil {
		return variable.ListOutput{}, err
	}

	vars, err := uc.repo.List(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return variable.ListOutput{}, err
	}

	for i := range vars {
		vars[i].Value = maskValue(vars[i].Key, vars[i].Value)
	}

	return variable.ListOutput{Variables: vars}, nil
}

// Export returns unmasked variables for local command injection (`run`).
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, projectID string) (map[string]string, error) {
	if _, err := uc.projects.GetOwned(ctx, sc, projectID); err != nil {
		return nil, err
	}

	vars, err := uc.repo.List(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export List: %v", err)
		return nil, err
	}

	out := make(map[string]string, len(vars))
	for _, v := range vars {
		out[v.Key] = v.Value
	}
	return out, nil
}

// Resolve builds the full environment a deployment starts with.
func (uc *implUseCase) Resolve(ctx context.Context, projectID string, port int) (map[string]string, error) {
	vars, err := uc.repo.List(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resolve List: %v", err)
		return nil, err
	}

	env := make(map[string]string, len(vars)+1)
	for _, v := range vars {
		env[v.Key] = v.Value
	}
	env["PORT"] = strconv.Itoa(port)
	return env, nil
}

func maskValue(key, value string) string {
	if value == "" {
		return ""
	}
	upper := strings.ToUpper(key)
	for _, hint := range secretKeyHints {
		if strings.Contains(upper, hint) {
			return "••••••••"
		}
	}
	return value
}
