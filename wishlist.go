package academy

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/views"
)

const (
	sessionName = "academy_session"
	wishlistKey = "wishlist"

	// maxWishlist bounds the cookie payload.
	maxWishlist = 50
)

// wishlistSlugs returns the slugs saved in the visitor's session.
func wishlistSlugs(c echo.Context) []string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw, _ := sess.Values[wishlistKey].(string)
	return parseWishlist(raw)
}

func parseWishlist(raw string) []string {
	var slugs []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(slugs, s) {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

// toggleWishlist adds slug when absent and removes it when present. The
// result reports whether slug is saved afterwards.
func toggleWishlist(slugs []string, slug string) ([]string, bool) {
	if i := slices.Index(slugs, slug); i >= 0 {
		return slices.Delete(slices.Clone(slugs), i, i+1), false
	}
	out := append(slices.Clone(slugs), slug)
	if len(out) > maxWishlist {
		out = out[len(out)-maxWishlist:]
	}
	return out, true
}

func (a *App) handleWishlist(c echo.Context) error {
	var courses []catalog.Course
	for _, slug := range wishlistSlugs(c) {
		// Courses removed from the catalog are skipped.
		if course, ok := a.Catalog.FindBySlug(slug); ok {
			courses = append(courses, course)
		}
	}
	return Render(c, views.Wishlist(a.site(), courses, CsrfToken(c)))
}

func (a *App) handleWishlistToggle(c echo.Context) error {
	if !a.wishlistLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many requests")
	}
	slug := c.Param("slug")
	if _, ok := a.Catalog.FindBySlug(slug); !ok {
		return echo.ErrNotFound
	}

	// A cookie that no longer decodes yields a fresh session.
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return err
	}
	raw, _ := sess.Values[wishlistKey].(string)
	slugs, saved := toggleWishlist(parseWishlist(raw), slug)
	sess.Values[wishlistKey] = strings.Join(slugs, ",")
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	a.log.WithField("slug", slug).WithField("saved", saved).Debug("wishlist toggled")

	next := "/" + slug
	if c.FormValue("next") == "/wishlist" {
		next = "/wishlist"
	}
	return c.Redirect(http.StatusSeeOther, next)
}
