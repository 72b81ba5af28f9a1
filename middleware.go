package academy

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())
	e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
	}))

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			a.log.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"remote_ip":  v.RemoteIP,
			}).Info("request")
			return nil
		},
	}))

	e.Use(middleware.Recover())

	// Brotli wins when the client accepts it; gzip covers the rest. PNG
	// previews are already compressed.
	skipCompression := func(c echo.Context) bool {
		path := c.Request().URL.Path
		return strings.HasPrefix(path, "/public/") || path == "/api/og"
	}
	e.Use(brotliMiddleware(5, skipCompression))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return skipCompression(c) || acceptsBrotli(c.Request())
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; form-action 'self'",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(session.Middleware(a.newSessionStore()))

	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		ContextKey:     middleware.DefaultCSRFConfig.ContextKey,
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   a.Config.CookieSecure,
		CookieHTTPOnly: true,
		Skipper: func(c echo.Context) bool {
			return !needsCSRF(c.Request().URL.Path)
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(a.cacheControlMiddleware)
}

// needsCSRF reports whether path serves or accepts the wishlist form.
// Shared-cacheable routes are left without the cookie.
func needsCSRF(path string) bool {
	switch {
	case path == "/", path == "/sitemap.xml", path == "/feed.xml", path == "/robots.txt", path == "/favicon.svg":
		return false
	case strings.HasPrefix(path, "/api/"), strings.HasPrefix(path, "/public/"):
		return false
	}
	return true
}

// cacheControlMiddleware sets the default caching policy per route family.
// Handlers may override it, e.g. for personalized pages or failed previews.
func (a *App) cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	pages := fmt.Sprintf("public, max-age=%d", int(a.Config.PageRevalidate.Seconds()))
	return func(c echo.Context) error {
		req := c.Request()
		path := req.URL.Path
		h := c.Response().Header()
		switch {
		case req.Method != http.MethodGet && req.Method != http.MethodHead:
			h.Set(echo.HeaderCacheControl, "no-store")
		case strings.HasPrefix(path, "/public/"):
			h.Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")
		case path == "/sitemap.xml" || path == "/feed.xml" || path == "/robots.txt":
			h.Set(echo.HeaderCacheControl, "public, max-age=86400")
		case path == "/wishlist":
			h.Set(echo.HeaderCacheControl, "no-store")
		case path == "/api/og":
			h.Set(echo.HeaderCacheControl, a.Config.PreviewCache.Header())
		default:
			h.Set(echo.HeaderCacheControl, pages)
		}
		return next(c)
	}
}

// previewRateLimiter throttles image generation per client IP.
func (a *App) previewRateLimiter() echo.MiddlewareFunc {
	limit := a.Config.PreviewRateLimit
	burst := int(math.Ceil(limit)) * 2
	if burst < 1 {
		burst = 1
	}
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			a.log.WithField("ip", identifier).Warn("preview rate limit exceeded")
			c.Response().Header().Set("Retry-After", "1")
			return c.String(http.StatusTooManyRequests, "Too many requests")
		},
	})
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 30,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// CsrfToken extracts the CSRF token from the Echo context.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
