package academy

import (
	"encoding/xml"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/seo"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	Author      string `xml:"author,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// renderRSS publishes one item per course, dated by its start date.
func (a *App) renderRSS(c echo.Context, courses []catalog.Course) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(courses))
	for _, course := range courses {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", course.StartDate); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		link := seo.CourseURL(base, course.Slug)
		items = append(items, rssItem{
			Title:       course.Name,
			Link:        link,
			Description: course.Description,
			Category:    course.Category,
			Author:      course.Instructor,
			PubDate:     pubDate,
			GUID:        link,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", feed)
}
