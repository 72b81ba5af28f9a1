// Package academy serves the StartHub Academy course catalog: listing and
// detail pages with full search and social metadata, a JSON API, generated
// social preview images, and a session-backed wishlist.
package academy

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/ogimage"
	"github.com/starthub/academy/views"
)

// App wires the catalog, preview renderer, handlers and middleware into an
// Echo server.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Catalog  catalog.Repository
	Renderer *ogimage.Renderer
	Previews *PreviewCache

	log             logrus.FieldLogger
	wishlistLimiter *windowLimiter
	customRoutes    []func(*App)
	staticDir       string
}

// New creates an App serving the given course repository.
func New(cfg SiteConfig, repo catalog.Repository, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    cfg,
		Echo:      e,
		Catalog:   repo,
		log:       logrus.StandardLogger(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup builds the preview renderer and registers middleware and routes.
// Start calls it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.Catalog == nil {
		return fmt.Errorf("academy: catalog is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("academy: SessionSecret is required")
	}

	renderer, err := ogimage.NewRenderer(a.Catalog, ogimage.Options{SiteName: a.Config.Name})
	if err != nil {
		return fmt.Errorf("academy: init preview renderer: %w", err)
	}
	a.Renderer = renderer
	a.Previews = NewPreviewCache(renderer.Render, a.Config.PageRevalidate)
	a.wishlistLimiter = newWindowLimiter(a.Config.WishlistLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"addr":    a.Config.Addr,
		"url":     a.Config.URL,
		"courses": len(a.Catalog.ListAll()),
	}).Info("academy: listening")

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	if a.wishlistLimiter != nil {
		a.wishlistLimiter.Close()
	}
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded stylesheet and icon; anything else under /public/ falls
	// through to the static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/favicon.svg", echo.WrapHandler(embeddedHandler))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// API
	e.GET("/api/courses", a.handleCourseList)
	e.GET("/api/courses/:slug", a.handleCourseDetail)
	e.GET("/api/og", a.handlePreview, a.previewRateLimiter())

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/wishlist", a.handleWishlist)
	e.GET("/:slug", a.handleCourse)
	e.POST("/:slug/wishlist", a.handleWishlistToggle)
}

func (a *App) site() views.Site {
	return views.Site{Name: a.Config.Name, URL: a.Config.URL}
}
