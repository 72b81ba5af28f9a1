// Package ogimage renders the 1200x630 social preview images served at
// /api/og, either for the whole site or for a single course.
package ogimage

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strconv"
	"unicode/utf8"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/starthub/academy/catalog"
)

const (
	Width  = 1200
	Height = 630

	// DefaultDescriptionBudget is how many characters of a course
	// description fit on a preview before it is cut.
	DefaultDescriptionBudget = 130

	ellipsis = "..."
)

// ErrCourseNotFound is returned when a preview is requested for a slug
// that is not in the catalog.
var ErrCourseNotFound = errors.New("ogimage: course not found")

// Kind selects which preview layout is drawn.
type Kind int

const (
	KindSite Kind = iota
	KindCourse
)

// Layout is the text content of a preview, before rasterization.
type Layout struct {
	Kind        Kind
	Badge       string   // site layout only
	Title       string
	Description string
	Stats       []string // drawn as one row
	Footer      string   // course layout only
	Price       string   // course layout only
}

// Options holds the fixed copy drawn on previews.
type Options struct {
	SiteName          string // default "StartHub Academy"
	Headline          string // default "Master Your Startup Journey"
	Subheadline       string
	SiteRating        string // shown on the site preview, default "4.8"
	InstructorLabel   string // default "Expert Instructors"
	DescriptionBudget int    // default DefaultDescriptionBudget
}

func (o *Options) setDefaults() {
	if o.SiteName == "" {
		o.SiteName = "StartHub Academy"
	}
	if o.Headline == "" {
		o.Headline = "Master Your Startup Journey"
	}
	if o.Subheadline == "" {
		o.Subheadline = "Expert-led courses for founders and entrepreneurs"
	}
	if o.SiteRating == "" {
		o.SiteRating = "4.8"
	}
	if o.InstructorLabel == "" {
		o.InstructorLabel = "Expert Instructors"
	}
	if o.DescriptionBudget <= 0 {
		o.DescriptionBudget = DefaultDescriptionBudget
	}
}

// Renderer composes and rasterizes previews from a course repository.
// It holds no mutable state and is safe for concurrent use.
type Renderer struct {
	repo    catalog.Repository
	opts    Options
	regular *opentype.Font
	bold    *opentype.Font
}

// NewRenderer parses the embedded fonts and returns a Renderer over repo.
func NewRenderer(repo catalog.Repository, opts Options) (*Renderer, error) {
	opts.setDefaults()
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ogimage: parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ogimage: parse bold font: %w", err)
	}
	return &Renderer{repo: repo, opts: opts, regular: regular, bold: bold}, nil
}

// Compose builds the preview layout. An empty slug selects the site
// preview; an unknown slug returns ErrCourseNotFound.
func (r *Renderer) Compose(slug string) (Layout, error) {
	if slug == "" {
		return Layout{
			Kind:        KindSite,
			Badge:       r.opts.SiteName,
			Title:       r.opts.Headline,
			Description: r.opts.Subheadline,
			Stats: []string{
				strconv.Itoa(len(r.repo.ListAll())) + " Courses",
				"Rating: " + r.opts.SiteRating,
				r.opts.InstructorLabel,
			},
		}, nil
	}

	course, ok := r.repo.FindBySlug(slug)
	if !ok {
		return Layout{}, ErrCourseNotFound
	}
	return Layout{
		Kind:        KindCourse,
		Title:       course.Name,
		Description: Truncate(course.Description, r.opts.DescriptionBudget),
		Stats: []string{
			fmt.Sprintf("Rating: %s (%d reviews)", catalog.FormatNumber(course.Rating), course.TotalReviews),
			course.Duration,
		},
		Footer: r.opts.SiteName,
		Price:  course.DisplayPrice(),
	}, nil
}

// Render composes the preview for slug and encodes it as PNG.
func (r *Renderer) Render(slug string) ([]byte, error) {
	layout, err := r.Compose(slug)
	if err != nil {
		return nil, err
	}
	img, err := r.draw(layout)
	if err != nil {
		return nil, fmt.Errorf("ogimage: draw: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ogimage: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Truncate cuts s to budget characters and appends "..." only when
// something was cut. A negative budget is treated as zero.
func Truncate(s string, budget int) string {
	if budget < 0 {
		budget = 0
	}
	if utf8.RuneCountInString(s) <= budget {
		return s
	}
	runes := []rune(s)
	return string(runes[:budget]) + ellipsis
}
