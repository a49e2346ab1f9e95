package provisioner

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"skylift/config"
	"skylift/internal/model"
	"skylift/internal/plugin"
	"skylift/internal/plugin/repository"
	"skylift/pkg/log"
)

// Redis allocates logical databases on the shared managed Redis instance.
// The shared instance authenticates every tenant with the same managed
// password; isolation is per logical DB index.
type Redis struct {
	repo repository.Repository
	cfg  config.ManagedConfig
	l    log.Logger
}

// NewRedis creates the Redis provisioner.
func NewRedis(repo repository.Repository, cfg config.ManagedConfig, l log.Logger) *Redis {
	return &Redis{repo: repo, cfg: cfg, l: l}
}

func (r *Redis) Kind() model.PluginKind { return model.PluginRedis }

// Provision picks the lowest free logical DB index and returns the URL
// the application will receive as REDIS_URL. Failed plugins never got a
// working URL, so their indexes count as free.
func (r *Redis) Provision(ctx context.Context, project model.Project) (string, error) {
	existing, err := r.repo.ListByKind(ctx, model.PluginRedis)
	if err != nil {
		return "", fmt.Errorf("list redis plugins: %w", err)
	}

	maxDBs := r.cfg.RedisMaxDBs
	if maxDBs <= 0 {
		maxDBs = 16
	}

	used := make(map[int]bool, len(existing))
	for _, p := range existing {
		if p.Status == model.PluginStatusFailed {
			continue
		}
		if idx, ok := dbIndex(p.ConnectionURL); ok {
			used[idx] = true
		}
	}

	// Index 0 is kept for platform use.
	index := 0
	for i := 1; i < maxDBs; i++ {
		if !used[i] {
			index = i
			break
		}
	}
	if index == 0 {
		return "", fmt.Errorf("%w: all %d redis logical databases allocated", plugin.ErrNoCapacity, maxDBs-1)
	}

	dsn := url.URL{
		Scheme: "redis",
		Host:   fmt.Sprintf("%s:%d", r.cfg.RedisHost, r.cfg.RedisPort),
		Path:   fmt.Sprintf("/%d", index),
	}
	if r.cfg.RedisPassword != "" {
		dsn.User = url.UserPassword("default", r.cfg.RedisPassword)
	}
	return dsn.String(), nil
}

// dbIndex extracts the logical DB number from a redis URL.
func dbIndex(dsn string) (int, bool) {
	u, err := url.Parse(dsn)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(u.Path, "/"))
	if err != nil {
		return 0, false
	}
	return n, true
}
