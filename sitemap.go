package academy

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/seo"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

func (a *App) renderSitemap(c echo.Context, courses []catalog.Course) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: base + "/", ChangeFreq: "daily"},
	}
	for _, course := range courses {
		urls = append(urls, sitemapURL{
			Loc:        seo.CourseURL(base, course.Slug),
			LastMod:    course.StartDate,
			ChangeFreq: "weekly",
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	return writeXML(c, "application/xml; charset=utf-8", sitemap)
}

func writeXML(c echo.Context, contentType string, v any) error {
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(v)
}
