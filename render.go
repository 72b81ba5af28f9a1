package academy

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a page component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a page component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// RenderPrivate renders a page that embeds per-visitor state such as the
// CSRF token or wishlist, so shared caches must not store it.
func RenderPrivate(c echo.Context, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "private, no-cache")
	return Render(c, cmp)
}
