package seo

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/starthub/academy/catalog"
)

func TestCourseStructuredDataMatchesCatalog(t *testing.T) {
	for _, course := range catalog.Default().ListAll() {
		doc := CourseStructuredData(course, testBase)

		if doc.AggregateRating.RatingValue != course.Rating {
			t.Errorf("%s: ratingValue = %v, want %v", course.Slug, doc.AggregateRating.RatingValue, course.Rating)
		}
		if doc.AggregateRating.ReviewCount != course.TotalReviews {
			t.Errorf("%s: reviewCount = %d, want %d", course.Slug, doc.AggregateRating.ReviewCount, course.TotalReviews)
		}
		if doc.AggregateRating.BestRating != 5 || doc.AggregateRating.WorstRating != 1 {
			t.Errorf("%s: rating bounds = %d..%d, want 1..5", course.Slug, doc.AggregateRating.WorstRating, doc.AggregateRating.BestRating)
		}
		if doc.Offers.Price != course.Price || doc.Offers.PriceCurrency != course.Currency {
			t.Errorf("%s: offer = %v %s, want %v %s", course.Slug, doc.Offers.Price, doc.Offers.PriceCurrency, course.Price, course.Currency)
		}
		if doc.Offers.URL != testBase+"/"+course.Slug {
			t.Errorf("%s: offer url = %q", course.Slug, doc.Offers.URL)
		}
		if doc.HasCourseInstance.StartDate != course.StartDate || doc.HasCourseInstance.EndDate != course.EndDate {
			t.Errorf("%s: instance dates = %s..%s", course.Slug, doc.HasCourseInstance.StartDate, doc.HasCourseInstance.EndDate)
		}
		if doc.HasCourseInstance.CourseMode != "online" || doc.HasCourseInstance.CourseWorkload != course.Duration {
			t.Errorf("%s: unexpected instance %+v", course.Slug, doc.HasCourseInstance)
		}
		if doc.Provider.Name != course.Provider.Name || doc.Instructor.Name != course.Instructor {
			t.Errorf("%s: provider/instructor mismatch", course.Slug)
		}
	}
}

func TestJSONLDShape(t *testing.T) {
	course, _ := catalog.Default().FindBySlug("venture-capital-masterclass")
	raw := JSONLD(CourseStructuredData(course, testBase))

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("JSONLD produced invalid JSON: %v", err)
	}
	if doc["@context"] != "https://schema.org" || doc["@type"] != "Course" {
		t.Errorf("unexpected header: %v %v", doc["@context"], doc["@type"])
	}
	offers, ok := doc["offers"].(map[string]any)
	if !ok {
		t.Fatalf("offers missing: %v", doc)
	}
	if offers["@type"] != "Offer" || offers["availability"] != "https://schema.org/InStock" {
		t.Errorf("unexpected offers: %v", offers)
	}
	rating := doc["aggregateRating"].(map[string]any)
	if rating["ratingValue"] != 4.7 {
		t.Errorf("ratingValue = %v, want 4.7", rating["ratingValue"])
	}
}

func TestJSONLDFallback(t *testing.T) {
	if got := JSONLD(math.NaN()); got != "{}" {
		t.Errorf("JSONLD(NaN) = %q, want {}", got)
	}
}
