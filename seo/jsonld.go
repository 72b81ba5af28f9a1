package seo

import (
	"encoding/json"

	"github.com/starthub/academy/catalog"
)

const schemaContext = "https://schema.org"

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
	BestRating  int     `json:"bestRating"`
	WorstRating int     `json:"worstRating"`
}

type Offer struct {
	Type          string  `json:"@type"`
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
	Availability  string  `json:"availability"`
	URL           string  `json:"url"`
	Category      string  `json:"category"`
}

type CourseInstance struct {
	Type           string `json:"@type"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	CourseMode     string `json:"courseMode"`
	CourseWorkload string `json:"courseWorkload"`
}

type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// CourseSchema is a schema.org Course document.
type CourseSchema struct {
	Context           string          `json:"@context"`
	Type              string          `json:"@type"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Provider          Organization    `json:"provider"`
	Instructor        Person          `json:"instructor"`
	EducationalLevel  string          `json:"educationalLevel"`
	TimeRequired      string          `json:"timeRequired"`
	AggregateRating   AggregateRating `json:"aggregateRating"`
	Offers            Offer           `json:"offers"`
	HasCourseInstance CourseInstance  `json:"hasCourseInstance"`
	About             Thing           `json:"about"`
	Image             string          `json:"image"`
	ThumbnailURL      string          `json:"thumbnailUrl"`
}

// WebsiteSchema is a schema.org WebSite document.
type WebsiteSchema struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// CourseStructuredData maps a course 1:1 onto a schema.org Course.
func CourseStructuredData(course catalog.Course, baseURL string) CourseSchema {
	return CourseSchema{
		Context:     schemaContext,
		Type:        "Course",
		Name:        course.Name,
		Description: course.Description,
		Provider: Organization{
			Type: "Organization",
			Name: course.Provider.Name,
			URL:  course.Provider.URL,
		},
		Instructor: Person{
			Type: "Person",
			Name: course.Instructor,
		},
		EducationalLevel: course.Level,
		TimeRequired:     course.Duration,
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: course.Rating,
			ReviewCount: course.TotalReviews,
			BestRating:  5,
			WorstRating: 1,
		},
		Offers: Offer{
			Type:          "Offer",
			Price:         course.Price,
			PriceCurrency: course.Currency,
			Availability:  "https://schema.org/InStock",
			URL:           CourseURL(baseURL, course.Slug),
			Category:      course.Category,
		},
		HasCourseInstance: CourseInstance{
			Type:           "CourseInstance",
			StartDate:      course.StartDate,
			EndDate:        course.EndDate,
			CourseMode:     "online",
			CourseWorkload: course.Duration,
		},
		About: Thing{
			Type: "Thing",
			Name: course.Category,
		},
		Image:        course.Image,
		ThumbnailURL: course.Image,
	}
}

// WebsiteStructuredData describes the site itself for the home page.
func WebsiteStructuredData(name, baseURL, description string) WebsiteSchema {
	return WebsiteSchema{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        name,
		URL:         baseURL + "/",
		Description: description,
	}
}

// JSONLD serializes a schema document for a <script type="application/ld+json">
// block. It returns "{}" if v cannot be encoded.
func JSONLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
