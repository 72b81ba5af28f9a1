package academy

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/starthub/academy/seo"
)

// SiteConfig holds all configuration for the academy site.
type SiteConfig struct {
	Name        string // Site name (default "StartHub Academy")
	BaseURL     string // Explicit canonical URL; overrides Env
	Env         string // "production" selects the public domain
	URL         string // Resolved canonical URL, derived from BaseURL and Env
	Description string // Site description for RSS and structured data

	Addr string // Listen address (default ":3000")

	SessionSecret string // Required: wishlist cookie secret
	CookieSecure  bool   // Set true for HTTPS

	PageRevalidate   time.Duration // Cache lifetime of pages and rendered previews (default 1h)
	PreviewCache     CachePolicy   // Cache-Control of preview images (default 7d, stale 1d)
	PreviewRateLimit float64       // Preview requests per second per client IP (default 5)
	WishlistLimit    int           // Wishlist changes per minute per client IP (default 30)
}

// CachePolicy describes a shared-cache lifetime.
type CachePolicy struct {
	MaxAge               time.Duration
	StaleWhileRevalidate time.Duration
}

// Header formats the policy as a Cache-Control value.
func (p CachePolicy) Header() string {
	maxAge := int(p.MaxAge.Seconds())
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
		maxAge, maxAge, int(p.StaleWhileRevalidate.Seconds()))
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = seo.SiteName
	}
	c.URL = seo.ResolveBaseURL(c.BaseURL, c.Env)
	if c.Description == "" {
		c.Description = "Expert-led courses for founders and entrepreneurs"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PageRevalidate == 0 {
		c.PageRevalidate = time.Hour
	}
	if c.PreviewCache.MaxAge == 0 {
		c.PreviewCache.MaxAge = 7 * 24 * time.Hour
	}
	if c.PreviewCache.StaleWhileRevalidate == 0 {
		c.PreviewCache.StaleWhileRevalidate = 24 * time.Hour
	}
	if c.PreviewRateLimit == 0 {
		c.PreviewRateLimit = 5
	}
	if c.WishlistLimit == 0 {
		c.WishlistLimit = 30
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for extra static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the default logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) {
		a.log = l
	}
}
