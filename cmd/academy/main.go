package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/starthub/academy"
	"github.com/starthub/academy/catalog"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := readConfig()
	if err != nil {
		if errors.Is(err, errHelp) {
			return
		}
		log.Fatalf("reading config: %v", err)
	}

	logger := log.New()
	if err := configureLogger(logger, cfg); err != nil {
		log.Fatalf("configuring logger: %v", err)
	}
	if out, err := conf.String(cfg); err == nil {
		logger.Debugf("config:\n%s", out)
	}

	repo, err := openCatalog(cfg.CatalogDB)
	if err != nil {
		logger.Fatalf("loading catalog: %v", err)
	}

	app := academy.New(academy.SiteConfig{
		BaseURL:       cfg.BaseURL,
		Env:           cfg.Env,
		Addr:          cfg.Addr,
		SessionSecret: cfg.SessionSecret,
		CookieSecure:  cfg.CookieSecure,

		PageRevalidate: cfg.PageRevalidate,
		PreviewCache: academy.CachePolicy{
			MaxAge:               cfg.PreviewMaxAge,
			StaleWhileRevalidate: cfg.PreviewStale,
		},
		PreviewRateLimit: cfg.PreviewRateLimit,
		WishlistLimit:    cfg.WishlistLimit,
	}, repo,
		academy.WithLogger(logger),
		academy.WithStaticDir(cfg.StaticDir),
		academy.WithCustomRoutes(healthRoute),
	)

	go func() {
		if err := app.Start(); err != nil {
			logger.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		logger.Fatalf("shutdown: %v", err)
	}
}

// healthRoute reports liveness and the number of courses served.
func healthRoute(a *academy.App) {
	a.Echo.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"courses": len(a.Catalog.ListAll()),
		})
	})
}

func configureLogger(l *log.Logger, cfg *Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	if cfg.LogFormat == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func openCatalog(path string) (catalog.Repository, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}
