// Package views renders the site's pages. Page markup lives in embedded
// html/template files; each page is exposed as a templ.Component so the
// handlers render every response the same way.
package views

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/seo"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"date":   FormatDate,
	"join":   strings.Join,
	"number": catalog.FormatNumber,
	"inc":    func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.html"))

// Site is the site-wide data every page header needs.
type Site struct {
	Name string
	URL  string
}

// Page is the data passed to every template.
type Page struct {
	Site   Site
	Meta   seo.Metadata
	JSONLD template.JS
	CSRF   string

	Courses    []catalog.Course
	Course     catalog.Course
	Wishlisted bool
}

func render(name string, p Page) templ.Component {
	return templ.FromGoHTML(pages.Lookup(name), p)
}

// Home lists every course.
func Home(site Site, meta seo.Metadata, jsonLD string, courses []catalog.Course) templ.Component {
	return render("home", Page{
		Site:    site,
		Meta:    meta,
		JSONLD:  template.JS(jsonLD),
		Courses: courses,
	})
}

// Course is the detail page of a single course.
func Course(site Site, meta seo.Metadata, jsonLD string, course catalog.Course, wishlisted bool, csrf string) templ.Component {
	return render("course", Page{
		Site:       site,
		Meta:       meta,
		JSONLD:     template.JS(jsonLD),
		CSRF:       csrf,
		Course:     course,
		Wishlisted: wishlisted,
	})
}

// Wishlist lists the courses saved in the visitor's session.
func Wishlist(site Site, courses []catalog.Course, csrf string) templ.Component {
	return render("wishlist", Page{
		Site: site,
		Meta: seo.Metadata{
			Title:       "Your Wishlist | " + site.Name,
			Description: "Courses you saved for later.",
		},
		CSRF:    csrf,
		Courses: courses,
	})
}

// NotFound is rendered for unknown courses and routes.
func NotFound(site Site) templ.Component {
	return render("notfound", Page{Site: site, Meta: seo.NotFound()})
}

// ServerError is rendered for unexpected failures.
func ServerError(site Site) templ.Component {
	return render("error", Page{
		Site: site,
		Meta: seo.Metadata{
			Title:       "Something went wrong | " + site.Name,
			Description: "An unexpected error occurred.",
		},
	})
}

// FormatDate turns an ISO date into "Mar 1, 2024". Unparseable input is
// returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
