package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"skylift/internal/model"
	"skylift/internal/variable"
	repo "skylift/internal/variable/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory Repository for usecase tests.
type memRepo struct {
	vars map[string]model.Variable // key: projectID + "/" + key
}

func newMemRepo() *memRepo {
	return &memRepo{vars: map[string]model.Variable{}}
}

func (m *memRepo) Upsert(ctx context.Context, opt repo.UpsertOptions) (model.Variable, error) {
	v := model.Variable{
		ID:        "v-" + opt.Key,
		ProjectID: opt.ProjectID,
		Key:       opt.Key,
		Value:     opt.Value,
		Injected:  opt.Injected,
	}
	m.vars[opt.ProjectID+"/"+opt.Key] = v
	return v, nil
}

func (m *memRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Variable, error) {
	return m.vars[opt.ProjectID+"/"+opt.Key], nil
}

func (m *memRepo) List(ctx context.Context, projectID string) ([]model.Variable, error) {
	var out []model.Variable
	for _, v := range m.vars {
		if v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memRepo) Delete(ctx context.Context, projectID, key string) error {
	k := projectID + "/" + key
	if _, ok := m.vars[k]; !ok {
		return repo.ErrNotFound
	}
	delete(m.vars, k)
	return nil
}

type allowAllProjects struct{}

func (allowAllProjects) GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	return model.Project{ID: id, OwnerID: sc.UserID}, nil
}

var testScope = model.Scope{UserID: "owner-1"}

func TestSet(t *testing.T) {
	t.Run("Reserved Key Rejected", func(t *testing.T) {
		uc := New(newMemRepo(), allowAllProjects{}, &mockLogger{})

		_, err := uc.Set(context.Background(), testScope, variable.SetInput{
			ProjectID: "p-1",
			Pairs:     map[string]string{"DATABASE_URL": "postgres://nope"},
		})
		if !errors.Is(err, variable.ErrReservedKey) {
			t.Errorf("expected ErrReservedKey, got %v", err)
		}
	})

	t.Run("Invalid Key Rejected Before Writes", func(t *testing.T) {
		r := newMemRepo()
		uc := New(r, allowAllProjects{}, &mockLogger{})

		_, err := uc.Set(context.Background(), testScope, variable.SetInput{
			ProjectID: "p-1",
			Pairs:     map[string]string{"GOOD_KEY": "x", "bad key": "y"},
		})
		if !errors.Is(err, variable.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
		if len(r.vars) != 0 {
			t.Errorf("expected no writes on validation failure, got %d", len(r.vars))
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		uc := New(newMemRepo(), allowAllProjects{}, &mockLogger{})

		_, err := uc.Set(context.Background(), testScope, variable.SetInput{ProjectID: "p-1"})
		if !errors.Is(err, variable.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Upserts All Pairs", func(t *testing.T) {
		r := newMemRepo()
		uc := New(r, allowAllProjects{}, &mockLogger{})

		out, err := uc.Set(context.Background(), testScope, variable.SetInput{
			ProjectID: "p-1",
			Pairs:     map[string]string{"QWEN_API_KEY": "sk-123", "LOG_LEVEL": "INFO"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Updated != 2 {
			t.Errorf("expected 2 updates, got %d", out.Updated)
		}
	})
}

func TestSetFromDotenv(t *testing.T) {
	uc := New(newMemRepo(), allowAllProjects{}, &mockLogger{})

	t.Run("Parses Pairs And Comments", func(t *testing.T) {
		content := []byte("# comment\nQWEN_API_KEY=sk-abc\nLOG_LEVEL=INFO\n\nDEBUG=false\n")
		out, err := uc.SetFromDotenv(context.Background(), testScope, "p-1", content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Updated != 3 {
			t.Errorf("expected 3 updates, got %d", out.Updated)
		}
	})

	t.Run("Empty File", func(t *testing.T) {
		_, err := uc.SetFromDotenv(context.Background(), testScope, "p-1", []byte("# only comments\n"))
		if !errors.Is(err, variable.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestListMasksSecrets(t *testing.T) {
	r := newMemRepo()
	uc := New(r, allowAllProjects{}, &mockLogger{})
	ctx := context.Background()

	uc.Set(ctx, testScope, variable.SetInput{ProjectID: "p-1", Pairs: map[string]string{
		"QWEN_API_KEY": "sk-secret",
		"LOG_LEVEL":    "INFO",
	}})
	uc.SetInjected(ctx, "p-1", "DATABASE_URL", "postgresql://u:p@h/db")

	out, err := uc.List(ctx, testScope, "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byKey := map[string]model.Variable{}
	for _, v := range out.Variables {
		byKey[v.Key] = v
	}

	if byKey["QWEN_API_KEY"].Value == "sk-secret" {
		t.Error("expected QWEN_API_KEY to be masked")
	}
	if byKey["DATABASE_URL"].Value == "postgresql://u:p@h/db" {
		t.Error("expected DATABASE_URL to be masked")
	}
	if byKey["LOG_LEVEL"].Value != "INFO" {
		t.Errorf("expected LOG_LEVEL unmasked, got %q", byKey["LOG_LEVEL"].Value)
	}
}

func TestUnset(t *testing.T) {
	ctx := context.Background()

	t.Run("Injected Refused", func(t *testing.T) {
		r := newMemRepo()
		uc := New(r, allowAllProjects{}, &mockLogger{})
		uc.SetInjected(ctx, "p-1", "QWEN_PROXY_URL", "http://proxy")

		err := uc.Unset(ctx, testScope, variable.UnsetInput{ProjectID: "p-1", Key: "QWEN_PROXY_URL"})
		if !errors.Is(err, variable.ErrInjectedKey) {
			t.Errorf("expected ErrInjectedKey, got %v", err)
		}
	})

	t.Run("Reserved Refused", func(t *testing.T) {
		uc := New(newMemRepo(), allowAllProjects{}, &mockLogger{})
		err := uc.Unset(ctx, testScope, variable.UnsetInput{ProjectID: "p-1", Key: "PORT"})
		if !errors.Is(err, variable.ErrReservedKey) {
			t.Errorf("expected ErrReservedKey, got %v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		uc := New(newMemRepo(), allowAllProjects{}, &mockLogger{})
		err := uc.Unset(ctx, testScope, variable.UnsetInput{ProjectID: "p-1", Key: "NOPE"})
		if !errors.Is(err, variable.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestResolve(t *testing.T) {
	r := newMemRepo()
	uc := New(r, allowAllProjects{}, &mockLogger{})
	ctx := context.Background()

	uc.Set(ctx, testScope, variable.SetInput{ProjectID: "p-1", Pairs: map[string]string{"LOG_LEVEL": "INFO"}})
	uc.SetInjected(ctx, "p-1", "DATABASE_URL", "postgresql://u:p@h/db")

	env, err := uc.Resolve(ctx, "p-1", 8000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env["PORT"] != "8000" {
		t.Errorf("expected PORT=8000, got %q", env["PORT"])
	}
	if env["DATABASE_URL"] == "" || env["LOG_LEVEL"] != "INFO" {
		t.Errorf("unexpected env: %v", env)
	}
}

// The shipped example variable file must contain every variable the deploy
// guide's checklist requires, and must never hand-set platform-injected ones.
func TestExampleEnvChecklist(t *testing.T) {
	path := filepath.Join("..", "..", "..", "examples", "qwen-backend.env")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read example env: %v", err)
	}

	uc := New(newMemRepo(), allowAllProjects{}, &mockLogger{})
	out, err := uc.SetFromDotenv(context.Background(), testScope, "p-1", content)
	if err != nil {
		t.Fatalf("example env must be settable as-is: %v", err)
	}

	required := []string{
		"QWEN_API_KEY", "QWEN_API_BASE", "QWEN_TEXT_MODEL", "QWEN_OCR_MODEL",
		"QWEN_EMBEDDING_MODEL", "APP_NAME", "ENVIRONMENT", "DEBUG", "LOG_LEVEL",
		"SECRET_KEY", "JWT_SECRET_KEY", "JWT_ALGORITHM", "JWT_EXPIRE_MINUTES",
		"CORS_ORIGINS", "RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_PER_HOUR",
		"AGENT_TIMEOUT_SECONDS", "AGENT_RETRY_ATTEMPTS", "AGENT_MAX_TOKENS",
		"CACHE_TTL_SECONDS", "ANALYSIS_CACHE_TTL",
	}
	if out.Updated != len(required) {
		t.Errorf("expected %d variables in example file, got %d", len(required), out.Updated)
	}

	env, err := uc.Export(context.Background(), testScope, "p-1")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, key := range required {
		if _, ok := env[key]; !ok {
			t.Errorf("checklist variable %s missing from example file", key)
		}
	}
	for reserved := range model.ReservedVariables {
		if _, ok := env[reserved]; ok {
			t.Errorf("example file must not set platform-injected %s", reserved)
		}
	}
}
