package academy

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/ogimage"
	"github.com/starthub/academy/seo"
	"github.com/starthub/academy/views"
)

func (a *App) handleHome(c echo.Context) error {
	base := a.Config.URL
	jsonLD := seo.JSONLD(seo.WebsiteStructuredData(a.Config.Name, base, a.Config.Description))
	return Render(c, views.Home(a.site(), seo.ForHome(base), jsonLD, a.Catalog.ListAll()))
}

func (a *App) handleCourse(c echo.Context) error {
	slug := c.Param("slug")
	course, ok := a.Catalog.FindBySlug(slug)
	if !ok {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
	}
	base := a.Config.URL
	meta := seo.ForCourse(&course, base)
	jsonLD := seo.JSONLD(seo.CourseStructuredData(course, base))
	saved := slices.Contains(wishlistSlugs(c), slug)
	return RenderPrivate(c, views.Course(a.site(), meta, jsonLD, course, saved, CsrfToken(c)))
}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (a *App) handleCourseList(c echo.Context) error {
	courses := a.Catalog.ListAll()
	if courses == nil {
		courses = []catalog.Course{}
	}
	n := len(courses)
	body, err := json.Marshal(apiResponse{Success: true, Data: courses, Count: &n})
	if err != nil {
		a.log.WithError(err).Error("encode course list")
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: "Failed to fetch courses"})
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (a *App) handleCourseDetail(c echo.Context) error {
	course, ok := a.Catalog.FindBySlug(c.Param("slug"))
	if !ok {
		return c.JSON(http.StatusNotFound, apiResponse{Error: "Course not found"})
	}
	body, err := json.Marshal(apiResponse{Success: true, Data: course})
	if err != nil {
		a.log.WithError(err).WithField("slug", course.Slug).Error("encode course")
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: "Failed to fetch course"})
	}
	return c.JSONBlob(http.StatusOK, body)
}

// handlePreview serves the 1200x630 social preview. Without courseSlug it
// renders the site-wide card.
func (a *App) handlePreview(c echo.Context) error {
	slug := c.QueryParam("courseSlug")
	img, err := a.Previews.Get(slug)
	if err != nil {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		if errors.Is(err, ogimage.ErrCourseNotFound) {
			return c.String(http.StatusNotFound, "Course not found")
		}
		a.log.WithError(err).WithField("slug", slug).Error("generate preview image")
		return c.String(http.StatusInternalServerError, "Failed to generate image")
	}
	c.Response().Header().Set(echo.HeaderCacheControl, a.Config.PreviewCache.Header())
	return c.Blob(http.StatusOK, "image/png", img)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Catalog.ListAll())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Catalog.ListAll())
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\n" +
		"Allow: /\n" +
		"Allow: /api/og\n" +
		"Disallow: /api/\n" +
		"Disallow: /wishlist\n" +
		"\n" +
		"Sitemap: " + a.Config.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.WithError(err).WithField("uri", c.Request().RequestURI).Error("server error")
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
