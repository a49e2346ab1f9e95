package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"skylift/config"
	"skylift/internal/deployment/logstream"
	"skylift/pkg/log"
)

// HTTPServer holds all dependencies for the control-plane HTTP server.
type HTTPServer struct {
	gin *gin.Engine
	l   log.Logger
	cfg *config.Config

	// db is the control-plane metadata store.
	db *pgxpool.Pool
	// adminDB is the superuser pool on the shared managed Postgres
	// cluster, used by plugin provisioning. May be nil when managed
	// Postgres is not configured.
	adminDB *pgxpool.Pool
	// hub fans live deployment log lines out to followers.
	hub *logstream.Hub
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger  log.Logger
	Config  *config.Config
	DB      *pgxpool.Pool
	AdminDB *pgxpool.Pool
	Hub     *logstream.Hub
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:       cfg.Logger,
		cfg:     cfg.Config,
		db:      cfg.DB,
		adminDB: cfg.AdminDB,
		hub:     cfg.Hub,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(srv.cfg.HTTPServer.Mode)
	srv.gin = gin.New()

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("config is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.hub == nil {
		return errors.New("log hub is required")
	}
	if srv.cfg.HTTPServer.Port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg.HTTPServer.Mode == "" {
		return errors.New("mode is required")
	}
	return nil
}
