package usecase

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"skylift/config"
	"skylift/internal/deployment"
	"skylift/internal/deployment/logstream"
	repo "skylift/internal/deployment/repository"
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

// mockRepo is safe for the concurrent access the follow loop performs.
type mockRepo struct {
	mu        sync.Mutex
	created   []repo.CreateOptions
	createErr error
	latest    model.Deployment
	byID      map[string]model.Deployment
	logs      map[string][]model.LogLine
	tailAsked int
}

func (m *mockRepo) Create(ctx context.Context, opt repo.CreateOptions) (model.Deployment, error) {
	if m.createErr != nil {
		return model.Deployment{}, m.createErr
	}
	m.created = append(m.created, opt)
	return model.Deployment{ID: opt.ID, ProjectID: opt.ProjectID, Status: model.DeploymentQueued, SourcePath: opt.SourcePath}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Deployment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[opt.ID], nil
}

func (m *mockRepo) setStatus(id string, status model.DeploymentStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byID == nil {
		m.byID = map[string]model.Deployment{}
	}
	d := m.byID[id]
	d.ID = id
	d.Status = status
	m.byID[id] = d
}

func (m *mockRepo) appendLines(id string, lines ...model.LogLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logs == nil {
		m.logs = map[string][]model.LogLine{}
	}
	m.logs[id] = append(m.logs[id], lines...)
}

func (m *mockRepo) Latest(ctx context.Context, projectID string) (model.Deployment, error) {
	return m.latest, nil
}

func (m *mockRepo) ListByProject(ctx context.Context, projectID string) ([]model.Deployment, error) {
	return nil, nil
}

func (m *mockRepo) ClaimQueued(ctx context.Context) (model.Deployment, error) {
	return model.Deployment{}, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repo.UpdateOptions) error { return nil }

func (m *mockRepo) IncrementRestarts(ctx context.Context, id string) (int, error) { return 0, nil }

func (m *mockRepo) AppendLogs(ctx context.Context, lines []model.LogLine) error { return nil }

func (m *mockRepo) TailLogs(ctx context.Context, deploymentID string, n int) ([]model.LogLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tailAsked = n
	return m.logs[deploymentID], nil
}

func (m *mockRepo) ListLogsAfter(ctx context.Context, deploymentID string, afterSeq int) ([]model.LogLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.LogLine
	for _, ln := range m.logs[deploymentID] {
		if ln.Seq > afterSeq {
			out = append(out, ln)
		}
	}
	return out, nil
}

func (m *mockRepo) NextSeq(ctx context.Context, deploymentID string) (int, error) { return 1, nil }

type allowAllProjects struct{}

func (allowAllProjects) GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	return model.Project{ID: id, OwnerID: sc.UserID, Slug: "demo"}, nil
}

var testScope = model.Scope{UserID: "owner-1"}

func newTestUseCase(t *testing.T, r repo.Repository, hub *logstream.Hub) deployment.UseCase {
	t.Helper()
	if hub == nil {
		hub = logstream.NewHub()
	}
	cfg := config.BuilderConfig{SourceDir: t.TempDir(), PollInterval: 5 * time.Millisecond}
	return New(&mockLogger{}, r, allowAllProjects{}, hub, cfg)
}

func TestUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Archive And Queues", func(t *testing.T) {
		r := &mockRepo{}
		uc := newTestUseCase(t, r, nil)

		out, err := uc.Up(ctx, testScope, deployment.UpInput{
			ProjectID: "p-1",
			Archive:   bytes.NewReader([]byte("fake tar.gz bytes")),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Deployment.Status != model.DeploymentQueued {
			t.Errorf("expected queued, got %s", out.Deployment.Status)
		}
		if len(r.created) != 1 {
			t.Fatalf("expected one create, got %d", len(r.created))
		}

		content, err := os.ReadFile(r.created[0].SourcePath)
		if err != nil {
			t.Fatalf("archive not stored: %v", err)
		}
		if string(content) != "fake tar.gz bytes" {
			t.Error("stored archive differs from upload")
		}
	})

	t.Run("Empty Archive Rejected", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{}, nil)

		_, err := uc.Up(ctx, testScope, deployment.UpInput{ProjectID: "p-1", Archive: bytes.NewReader(nil)})
		if !errors.Is(err, deployment.ErrEmptyArchive) {
			t.Errorf("expected ErrEmptyArchive, got %v", err)
		}
	})

	t.Run("Repo Failure Cleans Up Archive", func(t *testing.T) {
		r := &mockRepo{createErr: repo.ErrFailedToInsert}
		cfg := config.BuilderConfig{SourceDir: t.TempDir()}
		uc := New(&mockLogger{}, r, allowAllProjects{}, logstream.NewHub(), cfg)

		_, err := uc.Up(ctx, testScope, deployment.UpInput{ProjectID: "p-1", Archive: bytes.NewReader([]byte("x"))})
		if err == nil {
			t.Fatal("expected error")
		}
		entries, err := os.ReadDir(cfg.SourceDir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("orphaned archive left behind: %v", entries)
		}
	})
}

func TestLogs(t *testing.T) {
	ctx := context.Background()

	lines := []model.LogLine{
		{DeploymentID: "d-1", Seq: 1, Stream: "build", Message: "deployment d-1 started", Timestamp: time.Now()},
		{DeploymentID: "d-1", Seq: 2, Stream: "deploy", Message: "deployment live", Timestamp: time.Now()},
	}

	t.Run("Defaults To Latest Deployment", func(t *testing.T) {
		r := &mockRepo{
			latest: model.Deployment{ID: "d-1", ProjectID: "p-1", Status: model.DeploymentActive},
			logs:   map[string][]model.LogLine{"d-1": lines},
		}
		uc := newTestUseCase(t, r, nil)

		out, err := uc.Logs(ctx, testScope, deployment.LogsInput{ProjectID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Deployment.ID != "d-1" || len(out.Lines) != 2 {
			t.Errorf("unexpected output %+v", out)
		}
		if r.tailAsked != defaultTail {
			t.Errorf("expected default tail %d, got %d", defaultTail, r.tailAsked)
		}
	})

	t.Run("Tail N Respected", func(t *testing.T) {
		r := &mockRepo{
			latest: model.Deployment{ID: "d-1", ProjectID: "p-1"},
			logs:   map[string][]model.LogLine{"d-1": lines},
		}
		uc := newTestUseCase(t, r, nil)

		if _, err := uc.Logs(ctx, testScope, deployment.LogsInput{ProjectID: "p-1", Tail: 7}); err != nil {
			t.Fatal(err)
		}
		if r.tailAsked != 7 {
			t.Errorf("expected tail 7, got %d", r.tailAsked)
		}
	})

	t.Run("No Deployments", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{}, nil)

		_, err := uc.Logs(ctx, testScope, deployment.LogsInput{ProjectID: "p-1"})
		if !errors.Is(err, deployment.ErrNoDeployments) {
			t.Errorf("expected ErrNoDeployments, got %v", err)
		}
	})

	t.Run("Unknown Deployment ID", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{}, nil)

		_, err := uc.Logs(ctx, testScope, deployment.LogsInput{ProjectID: "p-1", DeploymentID: "nope"})
		if !errors.Is(err, deployment.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFollow(t *testing.T) {
	ctx := context.Background()

	building := model.Deployment{ID: "d-1", ProjectID: "p-1", Status: model.DeploymentBuilding}

	t.Run("Hub Publish Wakes The Stream", func(t *testing.T) {
		hub := logstream.NewHub()
		r := &mockRepo{latest: building}
		r.setStatus("d-1", model.DeploymentBuilding)
		uc := newTestUseCase(t, r, hub)

		ch, cancel, err := uc.Follow(ctx, testScope, deployment.LogsInput{ProjectID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cancel()

		// Publishers persist before they publish; mirror that here.
		line := model.LogLine{DeploymentID: "d-1", Seq: 1, Stream: "build", Message: "building"}
		r.appendLines("d-1", line)
		hub.Publish(line)

		select {
		case ln := <-ch:
			if ln.Message != "building" {
				t.Errorf("unexpected line %+v", ln)
			}
		case <-time.After(time.Second):
			t.Error("no line delivered")
		}
	})

	t.Run("Delivers Lines From Other Processes", func(t *testing.T) {
		// Nothing is ever published on this hub: the pipeline runs in a
		// different process and only the persisted log is shared.
		r := &mockRepo{latest: building}
		r.setStatus("d-1", model.DeploymentBuilding)
		uc := newTestUseCase(t, r, logstream.NewHub())

		ch, cancel, err := uc.Follow(ctx, testScope, deployment.LogsInput{ProjectID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cancel()

		r.appendLines("d-1",
			model.LogLine{DeploymentID: "d-1", Seq: 1, Stream: "build", Message: "deployment d-1 started"},
			model.LogLine{DeploymentID: "d-1", Seq: 2, Stream: "build", Message: "image ready"},
			model.LogLine{DeploymentID: "d-1", Seq: 3, Stream: "deploy", Message: "deployment live"},
		)
		r.setStatus("d-1", model.DeploymentActive)

		var got []model.LogLine
		deadline := time.After(2 * time.Second)
		for open := true; open; {
			select {
			case ln, ok := <-ch:
				if !ok {
					open = false
					break
				}
				got = append(got, ln)
			case <-deadline:
				t.Fatalf("stream did not end, received %d lines", len(got))
			}
		}

		if len(got) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(got))
		}
		for i, ln := range got {
			if ln.Seq != i+1 {
				t.Errorf("line %d out of order: seq %d", i, ln.Seq)
			}
		}
	})

	t.Run("Cancel Stops The Stream", func(t *testing.T) {
		r := &mockRepo{latest: building}
		r.setStatus("d-1", model.DeploymentBuilding)
		uc := newTestUseCase(t, r, logstream.NewHub())

		ch, cancel, err := uc.Follow(ctx, testScope, deployment.LogsInput{ProjectID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cancel()

		select {
		case _, ok := <-ch:
			if ok {
				t.Error("expected closed channel after cancel")
			}
		case <-time.After(time.Second):
			t.Error("channel not closed after cancel")
		}
	})
}
