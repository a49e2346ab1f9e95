package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skylift/config"
	"skylift/internal/domains"
	repo "skylift/internal/domains/repository"
	"skylift/internal/model"
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

type mockRepo struct {
	getOneFn func(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error)
	created  []repo.CreateOptions
	statuses map[string]model.DomainStatus
}

func (m *mockRepo) Create(ctx context.Context, opt repo.CreateOptions) (model.Domain, error) {
	m.created = append(m.created, opt)
	return model.Domain{
		ID:                "d-1",
		ProjectID:         opt.ProjectID,
		Hostname:          opt.Hostname,
		Kind:              opt.Kind,
		Status:            opt.Status,
		VerificationToken: opt.VerificationToken,
	}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error) {
	if m.getOneFn == nil {
		return model.Domain{}, nil
	}
	return m.getOneFn(ctx, opt)
}

func (m *mockRepo) ListByProject(ctx context.Context, projectID string) ([]model.Domain, error) {
	return nil, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status model.DomainStatus) error {
	if m.statuses == nil {
		m.statuses = map[string]model.DomainStatus{}
	}
	m.statuses[id] = status
	return nil
}

type allowAllProjects struct{}

func (allowAllProjects) GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	return model.Project{ID: id, OwnerID: sc.UserID, Slug: "qwen-backend"}, nil
}

type stubResolver struct {
	records map[string][]string
	err     error
}

func (s *stubResolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[name], nil
}

var (
	testScope = model.Scope{UserID: "owner-1"}
	testEdge  = config.EdgeConfig{Zone: "up.skylift.app"}
)

func newTestUseCase(r repo.Repository, resolver domains.TXTResolver) domains.UseCase {
	return New(&mockLogger{}, r, allowAllProjects{}, resolver, testEdge)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Mints Slug Suffix Zone Hostname", func(t *testing.T) {
		r := &mockRepo{}
		uc := newTestUseCase(r, &stubResolver{})

		out, err := uc.Generate(ctx, testScope, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Existed {
			t.Error("fresh project should not report existing domain")
		}
		h := out.Domain.Hostname
		if !strings.HasPrefix(h, "qwen-backend-") || !strings.HasSuffix(h, ".up.skylift.app") {
			t.Errorf("unexpected hostname %q", h)
		}
		if out.Domain.Status != model.DomainStatusActive {
			t.Errorf("generated domain should be active, got %s", out.Domain.Status)
		}
	})

	t.Run("Idempotent On Repeat", func(t *testing.T) {
		existing := model.Domain{ID: "d-0", Hostname: "qwen-backend-ab12cd.up.skylift.app", Kind: model.DomainGenerated}
		r := &mockRepo{
			getOneFn: func(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error) {
				return existing, nil
			},
		}
		uc := newTestUseCase(r, &stubResolver{})

		out, err := uc.Generate(ctx, testScope, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Existed || out.Domain.Hostname != existing.Hostname {
			t.Errorf("expected existing domain back, got %+v", out)
		}
		if len(r.created) != 0 {
			t.Error("repeat generate must not insert a second domain")
		}
	})
}

func TestAddCustom(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending With TXT Record", func(t *testing.T) {
		r := &mockRepo{}
		uc := newTestUseCase(r, &stubResolver{})

		out, err := uc.AddCustom(ctx, testScope, domains.AddCustomInput{ProjectID: "p-1", Hostname: "API.Example.COM"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Domain.Hostname != "api.example.com" {
			t.Errorf("hostname not normalised: %q", out.Domain.Hostname)
		}
		if out.Domain.Status != model.DomainStatusPending {
			t.Errorf("custom domain should start pending, got %s", out.Domain.Status)
		}
		if out.TXTRecord != "_skylift-verify.api.example.com" {
			t.Errorf("unexpected TXT record %q", out.TXTRecord)
		}
		if out.Domain.VerificationToken == "" {
			t.Error("expected a verification token")
		}
	})

	t.Run("Invalid Hostname", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, &stubResolver{})

		_, err := uc.AddCustom(ctx, testScope, domains.AddCustomInput{ProjectID: "p-1", Hostname: "not a host"})
		if !errors.Is(err, domains.ErrInvalidHostname) {
			t.Errorf("expected ErrInvalidHostname, got %v", err)
		}
	})

	t.Run("Platform Zone Rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, &stubResolver{})

		_, err := uc.AddCustom(ctx, testScope, domains.AddCustomInput{ProjectID: "p-1", Hostname: "evil.up.skylift.app"})
		if !errors.Is(err, domains.ErrReservedZone) {
			t.Errorf("expected ErrReservedZone, got %v", err)
		}
	})

	t.Run("Duplicate Hostname", func(t *testing.T) {
		r := &mockRepo{
			getOneFn: func(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error) {
				return model.Domain{ID: "taken"}, nil
			},
		}
		uc := newTestUseCase(r, &stubResolver{})

		_, err := uc.AddCustom(ctx, testScope, domains.AddCustomInput{ProjectID: "p-1", Hostname: "api.example.com"})
		if !errors.Is(err, domains.ErrAlreadyExists) {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	pending := model.Domain{
		ID:                "d-1",
		ProjectID:         "p-1",
		Hostname:          "api.example.com",
		Kind:              model.DomainCustom,
		Status:            model.DomainStatusPending,
		VerificationToken: "tok123",
	}

	t.Run("TXT Match Activates", func(t *testing.T) {
		r := &mockRepo{
			getOneFn: func(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error) {
				return pending, nil
			},
		}
		resolver := &stubResolver{records: map[string][]string{
			"_skylift-verify.api.example.com": {"something-else", "tok123"},
		}}
		uc := newTestUseCase(r, resolver)

		d, err := uc.Verify(ctx, testScope, "p-1", "api.example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != model.DomainStatusActive {
			t.Errorf("expected active, got %s", d.Status)
		}
		if r.statuses["d-1"] != model.DomainStatusActive {
			t.Error("status update not persisted")
		}
	})

	t.Run("TXT Mismatch", func(t *testing.T) {
		r := &mockRepo{
			getOneFn: func(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error) {
				return pending, nil
			},
		}
		resolver := &stubResolver{records: map[string][]string{
			"_skylift-verify.api.example.com": {"wrong"},
		}}
		uc := newTestUseCase(r, resolver)

		_, err := uc.Verify(ctx, testScope, "p-1", "api.example.com")
		if !errors.Is(err, domains.ErrNotVerified) {
			t.Errorf("expected ErrNotVerified, got %v", err)
		}
	})

	t.Run("Lookup Failure Is Not Verified", func(t *testing.T) {
		r := &mockRepo{
			getOneFn: func(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error) {
				return pending, nil
			},
		}
		uc := newTestUseCase(r, &stubResolver{err: errors.New("NXDOMAIN")})

		_, err := uc.Verify(ctx, testScope, "p-1", "api.example.com")
		if !errors.Is(err, domains.ErrNotVerified) {
			t.Errorf("expected ErrNotVerified, got %v", err)
		}
	})

	t.Run("Unknown Domain", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, &stubResolver{})

		_, err := uc.Verify(ctx, testScope, "p-1", "api.example.com")
		if !errors.Is(err, domains.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
