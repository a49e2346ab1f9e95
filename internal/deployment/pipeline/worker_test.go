package pipeline

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"skylift/config"
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

// mockRepo keeps deployments and logs in memory.
type mockRepo struct {
	deployments map[string]model.Deployment
	logs        []model.LogLine
}

func newMockRepo(ds ...model.Deployment) *mockRepo {
	m := &mockRepo{deployments: map[string]model.Deployment{}}
	for _, d := range ds {
		m.deployments[d.ID] = d
	}
	return m
}

func (m *mockRepo) Create(ctx context.Context, opt repo.CreateOptions) (model.Deployment, error) {
	d := model.Deployment{ID: opt.ID, ProjectID: opt.ProjectID, Status: model.DeploymentQueued, SourcePath: opt.SourcePath}
	m.deployments[d.ID] = d
	return d, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Deployment, error) {
	return m.deployments[opt.ID], nil
}

func (m *mockRepo) Latest(ctx context.Context, projectID string) (model.Deployment, error) {
	return model.Deployment{}, nil
}

func (m *mockRepo) ListByProject(ctx context.Context, projectID string) ([]model.Deployment, error) {
	return nil, nil
}

func (m *mockRepo) ClaimQueued(ctx context.Context) (model.Deployment, error) {
	for id, d := range m.deployments {
		if d.Status == model.DeploymentQueued {
			d.Status = model.DeploymentBuilding
			m.deployments[id] = d
			return d, nil
		}
	}
	return model.Deployment{}, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repo.UpdateOptions) error {
	d := m.deployments[opt.ID]
	if d.ID == "" {
		d = model.Deployment{ID: opt.ID}
	}
	if opt.Status != "" {
		d.Status = opt.Status
	}
	if opt.ImageRef != "" {
		d.ImageRef = opt.ImageRef
	}
	if opt.FailedStep != "" {
		d.FailedStep = opt.FailedStep
	}
	if opt.FinishedAt != nil {
		d.FinishedAt = opt.FinishedAt
	}
	m.deployments[opt.ID] = d
	return nil
}

func (m *mockRepo) IncrementRestarts(ctx context.Context, id string) (int, error) {
	d := m.deployments[id]
	d.Restarts++
	m.deployments[id] = d
	return d.Restarts, nil
}

func (m *mockRepo) AppendLogs(ctx context.Context, lines []model.LogLine) error {
	m.logs = append(m.logs, lines...)
	return nil
}

func (m *mockRepo) TailLogs(ctx context.Context, deploymentID string, n int) ([]model.LogLine, error) {
	return m.logs, nil
}

func (m *mockRepo) ListLogsAfter(ctx context.Context, deploymentID string, afterSeq int) ([]model.LogLine, error) {
	var out []model.LogLine
	for _, ln := range m.logs {
		if ln.DeploymentID == deploymentID && ln.Seq > afterSeq {
			out = append(out, ln)
		}
	}
	return out, nil
}

func (m *mockRepo) NextSeq(ctx context.Context, deploymentID string) (int, error) {
	return len(m.logs) + 1, nil
}

type mockProjects struct {
	project model.Project
	active  []string
}

func (m *mockProjects) Get(ctx context.Context, id string) (model.Project, error) {
	return m.project, nil
}

func (m *mockProjects) SetActiveDeployment(ctx context.Context, projectID, deploymentID string) error {
	m.active = append(m.active, deploymentID)
	return nil
}

type stubEnv struct{ env map[string]string }

func (s stubEnv) Resolve(ctx context.Context, projectID string, port int) (map[string]string, error) {
	return s.env, nil
}

// stubRuntime hands every Start the same crash channel so tests control
// when the instance dies.
type stubRuntime struct{ crashed chan error }

func (s stubRuntime) Start(ctx context.Context, req StartRequest, logf func(string)) (<-chan error, error) {
	logf("started " + req.ImageRef)
	return s.crashed, nil
}

// writeArchive builds a tar.gz in dir containing the given files.
func writeArchive(t *testing.T, dir string, files map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, "source.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		if err := tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func testCfg() config.BuilderConfig {
	return config.BuilderConfig{
		Workers:        1,
		PollInterval:   10 * time.Millisecond,
		RestartBudget:  2,
		RestartBackoff: time.Millisecond,
	}
}

func newTestWorker(r *mockRepo, ps *mockProjects, hub *logstream.Hub) *Worker {
	env := stubEnv{env: map[string]string{"PORT": "8080", "APP_NAME": "qwen"}}
	return NewWorker(&mockLogger{}, r, ps, env, hub, nil, nil, testCfg())
}

func hasLine(lines []model.LogLine, substr string) bool {
	for _, ln := range lines {
		if strings.Contains(ln.Message, substr) {
			return true
		}
	}
	return false
}

func TestInspectArchive(t *testing.T) {
	dir := t.TempDir()

	t.Run("Dockerfile And Manifest", func(t *testing.T) {
		path := writeArchive(t, dir, map[string]string{
			"Dockerfile":   "FROM python:3.11-slim",
			"skylift.yaml": "deploy:\n  pre_deploy: alembic upgrade head\n",
			"main.py":      "app = FastAPI()",
		})

		info, err := InspectArchive(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.HasDockerfile {
			t.Error("Dockerfile not detected")
		}
		if !info.HasManifest || info.Manifest.Deploy.PreDeploy != "alembic upgrade head" {
			t.Errorf("manifest not parsed: %+v", info.Manifest)
		}
		if info.Files != 3 {
			t.Errorf("expected 3 files, got %d", info.Files)
		}
	})

	t.Run("Missing Archive", func(t *testing.T) {
		if _, err := InspectArchive(filepath.Join(dir, "nope.tar.gz")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy Path Promotes", func(t *testing.T) {
		dir := t.TempDir()
		path := writeArchive(t, dir, map[string]string{"Dockerfile": "FROM python:3.11"})

		d := model.Deployment{ID: "dep-new-1234", ProjectID: "p-1", Status: model.DeploymentBuilding, SourcePath: path}
		r := newMockRepo(d)
		ps := &mockProjects{project: model.Project{ID: "p-1"}}
		w := newTestWorker(r, ps, logstream.NewHub())

		w.Process(ctx, d)

		got := r.deployments[d.ID]
		if got.Status != model.DeploymentActive {
			t.Fatalf("expected active, got %s (failed step %q)", got.Status, got.FailedStep)
		}
		if got.ImageRef == "" {
			t.Error("image ref not recorded")
		}
		if len(ps.active) != 1 || ps.active[0] != d.ID {
			t.Errorf("project not promoted: %v", ps.active)
		}
		if !hasLine(r.logs, "deployment live") {
			t.Error("missing final log line")
		}
	})

	t.Run("Demotes Previous Active", func(t *testing.T) {
		dir := t.TempDir()
		path := writeArchive(t, dir, map[string]string{"Dockerfile": "FROM python:3.11"})

		prev := model.Deployment{ID: "dep-old-0000", ProjectID: "p-1", Status: model.DeploymentActive}
		next := model.Deployment{ID: "dep-new-1234", ProjectID: "p-1", Status: model.DeploymentBuilding, SourcePath: path}
		r := newMockRepo(prev, next)
		ps := &mockProjects{project: model.Project{ID: "p-1", ActiveDeploymentID: prev.ID}}
		w := newTestWorker(r, ps, logstream.NewHub())

		w.Process(ctx, next)

		if r.deployments[prev.ID].Status != model.DeploymentRemoved {
			t.Errorf("previous deployment not demoted: %s", r.deployments[prev.ID].Status)
		}
		if r.deployments[next.ID].Status != model.DeploymentActive {
			t.Errorf("new deployment not active: %s", r.deployments[next.ID].Status)
		}
	})

	t.Run("Missing Archive Fails Build Step", func(t *testing.T) {
		d := model.Deployment{ID: "dep-bad", ProjectID: "p-1", Status: model.DeploymentBuilding, SourcePath: "/nonexistent.tar.gz"}
		r := newMockRepo(d)
		w := newTestWorker(r, &mockProjects{}, logstream.NewHub())

		w.Process(ctx, d)

		got := r.deployments[d.ID]
		if got.Status != model.DeploymentFailed {
			t.Fatalf("expected failed, got %s", got.Status)
		}
		if got.FailedStep != "build" {
			t.Errorf("expected build step recorded, got %q", got.FailedStep)
		}
	})

	t.Run("Streams To Followers", func(t *testing.T) {
		dir := t.TempDir()
		path := writeArchive(t, dir, map[string]string{"Dockerfile": "FROM python:3.11"})

		d := model.Deployment{ID: "dep-follow", ProjectID: "p-1", Status: model.DeploymentBuilding, SourcePath: path}
		r := newMockRepo(d)
		hub := logstream.NewHub()
		ch, cancel := hub.Subscribe(d.ID)
		defer cancel()

		w := newTestWorker(r, &mockProjects{project: model.Project{ID: "p-1"}}, hub)
		w.Process(ctx, d)

		var streamed int
		for {
			if _, ok := <-ch; !ok {
				break
			}
			streamed++
			if streamed >= 3 {
				break
			}
		}
		if streamed < 3 {
			t.Errorf("expected streamed lines, got %d", streamed)
		}
	})
}

func TestHandleCrash(t *testing.T) {
	ctx := context.Background()

	newActive := func(t *testing.T) model.Deployment {
		dir := t.TempDir()
		path := writeArchive(t, dir, map[string]string{"Dockerfile": "FROM python:3.11"})
		return model.Deployment{ID: "dep-live", ProjectID: "p-1", Status: model.DeploymentActive, SourcePath: path, ImageRef: "registry.skylift.internal/p-1:dep-live"}
	}

	t.Run("Restart Within Budget", func(t *testing.T) {
		d := newActive(t)
		r := newMockRepo(d)
		w := newTestWorker(r, &mockProjects{}, logstream.NewHub())

		next, err := w.HandleCrash(ctx, d.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next == nil {
			t.Error("expected a crash channel for the restarted instance")
		}
		got := r.deployments[d.ID]
		if got.Status != model.DeploymentActive {
			t.Errorf("deployment should stay active, got %s", got.Status)
		}
		if got.Restarts != 1 {
			t.Errorf("expected 1 restart, got %d", got.Restarts)
		}
		if !hasLine(r.logs, "restarting") {
			t.Error("missing restart log line")
		}
	})

	t.Run("Budget Exhausted Marks Crashed", func(t *testing.T) {
		d := newActive(t)
		d.Restarts = 2 // at the budget already
		r := newMockRepo(d)
		w := newTestWorker(r, &mockProjects{}, logstream.NewHub())

		next, err := w.HandleCrash(ctx, d.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != nil {
			t.Error("nothing restarted, expected no crash channel")
		}
		if r.deployments[d.ID].Status != model.DeploymentCrashed {
			t.Errorf("expected crashed, got %s", r.deployments[d.ID].Status)
		}
	})

	t.Run("Ignores Non Active", func(t *testing.T) {
		d := newActive(t)
		d.Status = model.DeploymentFailed
		r := newMockRepo(d)
		w := newTestWorker(r, &mockProjects{}, logstream.NewHub())

		if _, err := w.HandleCrash(ctx, d.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.deployments[d.ID].Restarts != 0 {
			t.Error("restart counter must not move for non-active deployments")
		}
	})
}

func TestSupervise(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	path := writeArchive(t, dir, map[string]string{"Dockerfile": "FROM python:3.11"})
	d := model.Deployment{ID: "dep-live", ProjectID: "p-1", Status: model.DeploymentActive, SourcePath: path, ImageRef: "registry.skylift.internal/p-1:dep-live"}
	r := newMockRepo(d)

	// One crash queued, then the channel closes: the restarted
	// instance stops cleanly and supervision ends with it.
	crashed := make(chan error, 1)
	crashed <- errors.New("exit status 1")
	close(crashed)

	env := stubEnv{env: map[string]string{"PORT": "8080"}}
	w := NewWorker(&mockLogger{}, r, &mockProjects{}, env, logstream.NewHub(), nil, stubRuntime{crashed: crashed}, testCfg())

	done := make(chan struct{})
	go func() {
		w.supervise(ctx, d.ID, crashed)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervision did not end")
	}

	got := r.deployments[d.ID]
	if got.Restarts != 1 {
		t.Errorf("expected 1 restart, got %d", got.Restarts)
	}
	if got.Status != model.DeploymentActive {
		t.Errorf("deployment should stay active, got %s", got.Status)
	}
	if !hasLine(r.logs, "restarting") {
		t.Error("missing restart log line")
	}
}
