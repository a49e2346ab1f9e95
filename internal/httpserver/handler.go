package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "skylift/internal/auth/delivery/http"
	authRepoPG "skylift/internal/auth/repository/postgre"
	authUC "skylift/internal/auth/usecase"
	deploymentHTTP "skylift/internal/deployment/delivery/http"
	deploymentRepoPG "skylift/internal/deployment/repository/postgre"
	deploymentUC "skylift/internal/deployment/usecase"
	domainsHTTP "skylift/internal/domains/delivery/http"
	domainsRepoPG "skylift/internal/domains/repository/postgre"
	domainsUC "skylift/internal/domains/usecase"
	"skylift/internal/middleware"
	"skylift/internal/plugin"
	pluginHTTP "skylift/internal/plugin/delivery/http"
	"skylift/internal/plugin/provisioner"
	pluginRepoPG "skylift/internal/plugin/repository/postgre"
	pluginUC "skylift/internal/plugin/usecase"
	"skylift/internal/project"
	projectHTTP "skylift/internal/project/delivery/http"
	projectRepoPG "skylift/internal/project/repository/postgre"
	projectUC "skylift/internal/project/usecase"
	variableHTTP "skylift/internal/variable/delivery/http"
	variableRepoPG "skylift/internal/variable/repository/postgre"
	variableUC "skylift/internal/variable/usecase"
	"skylift/pkg/scope"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(gin.Recovery())
	srv.registerSystemRoutes()
	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
	srv.gin.GET("/docs", func(c *gin.Context) {
		c.Redirect(302, "/swagger/index.html")
	})
}

// registerDomainRoutes constructs every domain slice and mounts it
// under /api/v1. The project usecase is built first because the other
// domains lean on it for ownership checks; its status aggregation deps
// are attached once those domains exist.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Repositories.
	projectRepo := projectRepoPG.New(srv.db, srv.l)
	variableRepo := variableRepoPG.New(srv.db, srv.l)
	pluginRepo := pluginRepoPG.New(srv.db, srv.l)
	deploymentRepo := deploymentRepoPG.New(srv.db, srv.l)
	domainRepo := domainsRepoPG.New(srv.db, srv.l)
	authRepo := authRepoPG.New(srv.db, srv.l)

	// Usecases.
	projects := projectUC.New(projectRepo, project.StatusDeps{}, srv.l)
	variables := variableUC.New(variableRepo, projects, srv.l)

	var provisioners []plugin.Provisioner
	if srv.adminDB != nil {
		provisioners = append(provisioners, provisioner.NewPostgres(srv.adminDB, srv.cfg.Managed, srv.l))
	} else {
		srv.l.Warnf(ctx, "managed postgres not configured, postgresql plugin disabled")
	}
	provisioners = append(provisioners, provisioner.NewRedis(pluginRepo, srv.cfg.Managed, srv.l))

	plugins := pluginUC.New(pluginRepo, projects, variables, provisioners, srv.l)
	deployments := deploymentUC.New(srv.l, deploymentRepo, projects, srv.hub, srv.cfg.Builder)
	doms := domainsUC.New(srv.l, domainRepo, projects, nil, srv.cfg.Edge)

	projects.SetStatusDeps(project.StatusDeps{
		Plugins:     plugins,
		Deployments: deployments,
		Domains:     doms,
	})

	scopeManager := scope.NewManager(srv.cfg.Auth.JWTSecret, srv.cfg.Auth.JWTExpire)
	accounts := authUC.New(srv.l, authRepo, scopeManager, srv.cfg.Auth)

	// Middleware + routes.
	mw := middleware.New(srv.l, scopeManager, accounts, srv.cfg.RateLimit)

	// Rate limiting is registered per route, after Auth, so the
	// limiter keys on the principal rather than the client IP.
	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, accounts), mw)
	projectHTTP.RegisterRoutes(api, projectHTTP.New(srv.l, projects), mw)
	variableHTTP.RegisterRoutes(api, variableHTTP.New(srv.l, variables), mw)
	pluginHTTP.RegisterRoutes(api, pluginHTTP.New(srv.l, plugins), mw)
	deploymentHTTP.RegisterRoutes(api, deploymentHTTP.New(srv.l, deployments), mw)
	domainsHTTP.RegisterRoutes(api, domainsHTTP.New(srv.l, doms), mw)

	srv.l.Infof(ctx, "domain routes registered under /api/v1")
	return nil
}
