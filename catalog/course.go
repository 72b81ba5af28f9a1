// Package catalog holds the course table served by the site and the lookups
// the pages, JSON API and preview images are built from.
package catalog

import (
	"strconv"
	"unicode/utf8"
)

// Provider identifies the publisher of a course.
type Provider struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Course is a single catalog entry. Dates are ISO-8601 calendar dates.
type Course struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Provider         Provider `json:"provider"`
	Instructor       string   `json:"instructor"`
	Duration         string   `json:"duration"`
	Level            string   `json:"level"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	Rating           float64  `json:"rating"`
	TotalReviews     int      `json:"totalReviews"`
	Image            string   `json:"image"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Syllabus         []string `json:"syllabus"`
	LearningOutcomes []string `json:"learningOutcomes"`
	Category         string   `json:"category"`
}

// InstructorInitial returns the first character of the instructor name,
// used as the avatar glyph.
func (c Course) InstructorInitial() string {
	r, size := utf8.DecodeRuneInString(c.Instructor)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// DisplayPrice formats the price the way cards and previews show it ("$299").
func (c Course) DisplayPrice() string {
	return "$" + FormatNumber(c.Price)
}

// FormatNumber prints a float without trailing zeros (4.8, 299).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
