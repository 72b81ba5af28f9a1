package views

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/seo"
)

const testBase = "https://example.test"

func renderDoc(t *testing.T, render func(*bytes.Buffer) error) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func TestCoursePageHead(t *testing.T) {
	course, _ := catalog.Default().FindBySlug("technical-founder-bootcamp")
	meta := seo.ForCourse(&course, testBase)
	jsonLD := seo.JSONLD(seo.CourseStructuredData(course, testBase))
	site := Site{Name: seo.SiteName, URL: testBase}

	doc := renderDoc(t, func(buf *bytes.Buffer) error {
		return Course(site, meta, jsonLD, course, false, "token123").Render(context.Background(), buf)
	})

	if got := doc.Find("title").Text(); got != "Technical Founder Bootcamp | StartHub Academy" {
		t.Errorf("title = %q", got)
	}
	checks := map[string]string{
		`link[rel="canonical"]`:           testBase + "/technical-founder-bootcamp",
		`meta[property="og:url"]`:         testBase + "/technical-founder-bootcamp",
		`meta[property="og:image"]`:       testBase + "/api/og?courseSlug=technical-founder-bootcamp",
		`meta[property="og:image:width"]`: "1200",
		`meta[name="twitter:card"]`:       "summary_large_image",
		`meta[name="author"]`:             "Alex Chen",
		`input[name="_csrf"]`:             "token123",
	}
	for selector, want := range checks {
		sel := doc.Find(selector)
		attr := "content"
		if goquery.NodeName(sel) == "link" {
			attr = "href"
		}
		if goquery.NodeName(sel) == "input" {
			attr = "value"
		}
		if got, _ := sel.Attr(attr); got != want {
			t.Errorf("%s = %q, want %q", selector, got, want)
		}
	}

	raw := doc.Find(`script[type="application/ld+json"]`).Text()
	var ld map[string]any
	if err := json.Unmarshal([]byte(raw), &ld); err != nil {
		t.Fatalf("JSON-LD block is not valid JSON: %v\n%s", err, raw)
	}
	if ld["@type"] != "Course" || ld["name"] != course.Name {
		t.Errorf("unexpected JSON-LD: %v", ld)
	}

	if n := doc.Find(".syllabus li").Length(); n != len(course.Syllabus) {
		t.Errorf("syllabus items = %d, want %d", n, len(course.Syllabus))
	}
	if got := doc.Find(".avatar").First().Text(); got != "A" {
		t.Errorf("avatar initial = %q, want A", got)
	}
	if got := doc.Find("button.wishlist").Text(); got != "Add to Wishlist" {
		t.Errorf("wishlist button = %q", got)
	}
}

func TestHomeListsCourses(t *testing.T) {
	courses := catalog.Default().ListAll()
	doc := renderDoc(t, func(buf *bytes.Buffer) error {
		return Home(Site{Name: seo.SiteName}, seo.ForHome(testBase), "", courses).Render(context.Background(), buf)
	})
	cards := doc.Find("a.card")
	if cards.Length() != len(courses) {
		t.Fatalf("cards = %d, want %d", cards.Length(), len(courses))
	}
	cards.Each(func(i int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); href != "/"+courses[i].Slug {
			t.Errorf("card %d href = %q", i, href)
		}
	})
	if doc.Find(`script[type="application/ld+json"]`).Length() != 0 {
		t.Error("empty JSON-LD should not emit a script block")
	}
}

func TestNotFoundHasNoSocialTags(t *testing.T) {
	doc := renderDoc(t, func(buf *bytes.Buffer) error {
		return NotFound(Site{Name: seo.SiteName}).Render(context.Background(), buf)
	})
	if doc.Find(`meta[property^="og:"]`).Length() != 0 {
		t.Error("not-found page should not carry Open Graph tags")
	}
	if doc.Find(`link[rel="canonical"]`).Length() != 0 {
		t.Error("not-found page should not carry a canonical link")
	}
}

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"2024-03-01": "Mar 1, 2024",
		"2024-04-26": "Apr 26, 2024",
		"soon":       "soon",
	}
	for in, want := range tests {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
}
