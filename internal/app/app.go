package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/gunlinux/gunlinux.ru/config"
	"github.com/gunlinux/gunlinux.ru/internal/auth"
	"github.com/gunlinux/gunlinux.ru/internal/blog"
	"github.com/gunlinux/gunlinux.ru/internal/db"
	"github.com/gunlinux/gunlinux.ru/internal/rest"
	"github.com/gunlinux/gunlinux.ru/internal/rpc"
)

type App struct {
	DB     *db.DB
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	ttl, err := cfg.SessionTTL()
	if err != nil {
		return nil, err
	}

	database := db.New(dbConnect)
	services := blog.NewFactory(dbConnect, logger)

	tokens := auth.NewTokenManager(cfg.Auth.Secret, ttl)
	adapter := auth.NewAdapter(services.Users(), db.NewUserRepo(dbConnect), logger)

	handler := rest.NewBlogHandler(services, adapter, tokens, cfg.Blog.PageCategoryIDs, logger)
	e := rest.RegisterRoutes(handler)

	// admin RPC lives behind the session middleware
	rpcServer := rpc.New(logger, services)
	admin := e.Group("/v1", auth.Middleware(adapter, tokens))
	admin.Any("/rpc", echo.WrapHandler(rpcServer))
	admin.Any("/rpc/", echo.WrapHandler(rpcServer))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	if err := a.DB.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	return a.Echo.Start(addr)
}

// GracefulShutdown stops the HTTP server and releases the connection pool.
func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		err = nil
	}

	if cerr := a.DB.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}
