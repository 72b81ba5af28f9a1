package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"
)

// Repository is the read-only view of the course table that handlers,
// metadata derivation and the preview renderer depend on.
type Repository interface {
	// ListAll returns every course in authored order.
	ListAll() []Course
	// FindBySlug returns the course whose slug matches exactly.
	FindBySlug(slug string) (Course, bool)
}

// Catalog is an immutable, validated course table.
type Catalog struct {
	courses []Course
}

const dateLayout = "2006-01-02"

// New validates courses and returns a Catalog over them. Slugs must be
// non-empty and unique, ratings within [1, 5], prices and review counts
// non-negative, and an end date must not precede its start date.
func New(courses []Course) (*Catalog, error) {
	var errs []error
	seen := make(map[string]struct{}, len(courses))
	for i, c := range courses {
		if c.Slug == "" {
			errs = append(errs, fmt.Errorf("course %d: empty slug", i))
		} else if _, dup := seen[c.Slug]; dup {
			errs = append(errs, fmt.Errorf("course %d: duplicate slug %q", i, c.Slug))
		}
		seen[c.Slug] = struct{}{}
		if math.IsNaN(c.Rating) || c.Rating < 1 || c.Rating > 5 {
			errs = append(errs, fmt.Errorf("course %q: rating %v outside [1, 5]", c.Slug, c.Rating))
		}
		if math.IsNaN(c.Price) || c.Price < 0 {
			errs = append(errs, fmt.Errorf("course %q: negative price", c.Slug))
		}
		if c.TotalReviews < 0 {
			errs = append(errs, fmt.Errorf("course %q: negative review count", c.Slug))
		}
		start, serr := time.Parse(dateLayout, c.StartDate)
		end, eerr := time.Parse(dateLayout, c.EndDate)
		if serr == nil && eerr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("course %q: end date %s before start date %s", c.Slug, c.EndDate, c.StartDate))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog: invalid courses: %w", errors.Join(errs...))
	}
	return &Catalog{courses: cloneCourses(courses)}, nil
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := New(builtinCourses)
	if err != nil {
		panic(err)
	}
	return c
}

// ListAll returns a copy of the courses in authored order.
func (c *Catalog) ListAll() []Course {
	return cloneCourses(c.courses)
}

// FindBySlug scans the table for an exact, case-sensitive slug match.
func (c *Catalog) FindBySlug(slug string) (Course, bool) {
	if slug == "" {
		return Course{}, false
	}
	for _, course := range c.courses {
		if course.Slug == slug {
			return course.clone(), true
		}
	}
	return Course{}, false
}

// Slugs lists every slug in table order, for pre-generating pages.
func Slugs(r Repository) []string {
	courses := r.ListAll()
	slugs := make([]string, 0, len(courses))
	for _, c := range courses {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

// clone copies the slice fields so callers cannot reach the table.
func (c Course) clone() Course {
	c.Syllabus = slices.Clone(c.Syllabus)
	c.LearningOutcomes = slices.Clone(c.LearningOutcomes)
	return c
}

func cloneCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i, c := range courses {
		out[i] = c.clone()
	}
	return out
}
