package provisioner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skylift/config"
	"skylift/internal/model"
	"skylift/internal/plugin"
	repo "skylift/internal/plugin/repository"
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

// mockRepo serves ListByKind from a fixed slice.
type mockRepo struct {
	byKind []model.Plugin
}

func (m *mockRepo) Create(ctx context.Context, opt repo.CreateOptions) (model.Plugin, error) {
	return model.Plugin{}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Plugin, error) {
	return model.Plugin{}, nil
}

func (m *mockRepo) ListByProject(ctx context.Context, projectID string) ([]model.Plugin, error) {
	return nil, nil
}

func (m *mockRepo) ListByKind(ctx context.Context, kind model.PluginKind) ([]model.Plugin, error) {
	return m.byKind, nil
}

func (m *mockRepo) UpdateProvisioned(ctx context.Context, opt repo.UpdateProvisionedOptions) error {
	return nil
}

func redisPlugin(status model.PluginStatus, url string) model.Plugin {
	return model.Plugin{ID: "pl-" + url, Kind: model.PluginRedis, Status: status, ConnectionURL: url}
}

func TestRedisProvision(t *testing.T) {
	ctx := context.Background()
	cfg := config.ManagedConfig{RedisHost: "redis.internal", RedisPort: 6379, RedisPassword: "pw", RedisMaxDBs: 4}
	project := model.Project{ID: "p-1", Slug: "demo"}

	t.Run("First Allocation Skips Index Zero", func(t *testing.T) {
		r := NewRedis(&mockRepo{}, cfg, &mockLogger{})

		dsn, err := r.Provision(ctx, project)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(dsn, "/1") {
			t.Errorf("expected logical DB 1, got %s", dsn)
		}
	})

	t.Run("Lowest Free Index Wins", func(t *testing.T) {
		r := NewRedis(&mockRepo{byKind: []model.Plugin{
			redisPlugin(model.PluginStatusRunning, "redis://default:pw@redis.internal:6379/1"),
			redisPlugin(model.PluginStatusRunning, "redis://default:pw@redis.internal:6379/3"),
		}}, cfg, &mockLogger{})

		dsn, err := r.Provision(ctx, project)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(dsn, "/2") {
			t.Errorf("expected the gap at logical DB 2, got %s", dsn)
		}
	})

	t.Run("Failed Plugins Free Their Index", func(t *testing.T) {
		r := NewRedis(&mockRepo{byKind: []model.Plugin{
			redisPlugin(model.PluginStatusFailed, "redis://default:pw@redis.internal:6379/1"),
			redisPlugin(model.PluginStatusRunning, "redis://default:pw@redis.internal:6379/2"),
		}}, cfg, &mockLogger{})

		dsn, err := r.Provision(ctx, project)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(dsn, "/1") {
			t.Errorf("expected failed plugin's index 1 to be reused, got %s", dsn)
		}
	})

	t.Run("Capacity Exhausted", func(t *testing.T) {
		// maxDBs=4 leaves indexes 1..3 for tenants.
		r := NewRedis(&mockRepo{byKind: []model.Plugin{
			redisPlugin(model.PluginStatusRunning, "redis://default:pw@redis.internal:6379/1"),
			redisPlugin(model.PluginStatusRunning, "redis://default:pw@redis.internal:6379/2"),
			redisPlugin(model.PluginStatusRunning, "redis://default:pw@redis.internal:6379/3"),
		}}, cfg, &mockLogger{})

		_, err := r.Provision(ctx, project)
		if !errors.Is(err, plugin.ErrNoCapacity) {
			t.Fatalf("expected ErrNoCapacity, got %v", err)
		}
	})

	t.Run("Never Reuses A Live Index", func(t *testing.T) {
		r := NewRedis(&mockRepo{byKind: []model.Plugin{
			redisPlugin(model.PluginStatusRunning, "redis://default:pw@redis.internal:6379/1"),
		}}, cfg, &mockLogger{})

		dsn, err := r.Provision(ctx, project)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.HasSuffix(dsn, "/1") {
			t.Error("allocated a logical DB already in use by another tenant")
		}
	})
}
