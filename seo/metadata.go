// Package seo derives page metadata, social cards and schema.org documents
// from catalog courses.
package seo

import (
	"net/url"
	"strings"

	"github.com/starthub/academy/catalog"
)

const (
	SiteName       = "StartHub Academy"
	DevelopmentURL = "http://localhost:3000"
	ProductionURL  = "https://starthub.academy"

	// PreviewWidth and PreviewHeight are the dimensions of /api/og images.
	PreviewWidth  = 1200
	PreviewHeight = 630
)

// Image is an Open Graph image entry.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph is the og:* payload of a page.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Images      []Image
	Locale      string
	Type        string
}

// TwitterCard is the twitter:* payload of a page.
type TwitterCard struct {
	Card        string
	Title       string
	Description string
	Images      []string
}

// Metadata carries everything the <head> template emits for a page.
// OpenGraph and Twitter are nil for pages that should not be shared.
type Metadata struct {
	Title        string
	Description  string
	Keywords     []string
	Authors      []string
	CanonicalURL string
	OpenGraph    *OpenGraph
	Twitter      *TwitterCard
}

// ResolveBaseURL picks the absolute site URL. An explicit override always
// wins; otherwise production uses the public domain and every other mode
// the local development server.
func ResolveBaseURL(override, env string) string {
	if v := strings.TrimSpace(override); v != "" {
		return strings.TrimRight(v, "/")
	}
	if env == "production" {
		return ProductionURL
	}
	return DevelopmentURL
}

// CourseURL returns the canonical URL of a course page.
func CourseURL(baseURL, slug string) string {
	return baseURL + "/" + slug
}

// PreviewURL returns the social preview image URL. An empty slug selects
// the site-wide preview.
func PreviewURL(baseURL, slug string) string {
	if slug == "" {
		return baseURL + "/api/og"
	}
	return baseURL + "/api/og?courseSlug=" + url.QueryEscape(slug)
}

// NotFound is the metadata for an unknown course.
func NotFound() Metadata {
	return Metadata{
		Title:       "Course Not Found",
		Description: "The requested course could not be found.",
	}
}

// ForCourse derives the metadata bundle of a course page. A nil course
// yields the NotFound bundle.
func ForCourse(course *catalog.Course, baseURL string) Metadata {
	if course == nil {
		return NotFound()
	}
	canonical := CourseURL(baseURL, course.Slug)
	ogImage := PreviewURL(baseURL, course.Slug)

	return Metadata{
		Title:       course.Name + " | " + SiteName,
		Description: course.Description,
		Keywords: []string{
			course.Name,
			course.Category,
			"startup course",
			"entrepreneurship",
			"StartHub",
			course.Instructor,
			"online course",
			"professional development",
		},
		Authors:      []string{course.Instructor},
		CanonicalURL: canonical,
		OpenGraph: &OpenGraph{
			Title:       course.Name,
			Description: course.Description,
			URL:         canonical,
			SiteName:    SiteName,
			Images: []Image{{
				URL:    ogImage,
				Width:  PreviewWidth,
				Height: PreviewHeight,
				Alt:    course.Name,
			}},
			Type: "website",
		},
		Twitter: &TwitterCard{
			Card:        "summary_large_image",
			Title:       course.Name,
			Description: course.Description,
			Images:      []string{ogImage},
		},
	}
}

const (
	homeTitle       = "StartHub Academy | SEO-Optimized Courses for Entrepreneurs"
	homeDescription = "Explore expert-led courses on entrepreneurship, startup fundamentals, venture capital, and technical skills."
)

// ForHome is the metadata of the course listing page.
func ForHome(baseURL string) Metadata {
	ogImage := PreviewURL(baseURL, "")
	return Metadata{
		Title:        homeTitle,
		Description:  homeDescription,
		CanonicalURL: baseURL + "/",
		OpenGraph: &OpenGraph{
			Title:       homeTitle,
			Description: homeDescription,
			URL:         baseURL,
			SiteName:    SiteName,
			Images: []Image{{
				URL:    ogImage,
				Width:  PreviewWidth,
				Height: PreviewHeight,
				Alt:    SiteName + " - Master Your Startup Journey",
			}},
			Locale: "en_US",
			Type:   "website",
		},
		Twitter: &TwitterCard{
			Card:        "summary_large_image",
			Title:       homeTitle,
			Description: homeDescription,
			Images:      []string{ogImage},
		},
	}
}
