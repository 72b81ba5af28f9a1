package ogimage

import (
	"bytes"
	"errors"
	"image/png"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/starthub/academy/catalog"
)

func newTestRenderer(t *testing.T, repo catalog.Repository) *Renderer {
	t.Helper()
	r, err := NewRenderer(repo, Options{})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		budget int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"eleven chars", 10, "eleven cha..."},
		{"héllo wörld", 5, "héllo..."},
		{"", 5, ""},
		{"abc", 0, "..."},
		{"abc", -1, "..."},
		{"", -1, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.budget); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.budget, got, tt.want)
		}
	}
}

func TestComposeCourseTruncatesDescription(t *testing.T) {
	c := catalog.Default()
	r := newTestRenderer(t, c)

	course, _ := c.FindBySlug("startup-fundamentals-2024")
	layout, err := r.Compose("startup-fundamentals-2024")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if layout.Kind != KindCourse {
		t.Errorf("Kind = %v, want KindCourse", layout.Kind)
	}
	if layout.Title != course.Name {
		t.Errorf("Title = %q, want full course name", layout.Title)
	}
	if utf8.RuneCountInString(course.Description) <= DefaultDescriptionBudget {
		t.Fatal("fixture description should exceed the budget")
	}
	want := string([]rune(course.Description)[:DefaultDescriptionBudget]) + "..."
	if layout.Description != want {
		t.Errorf("Description = %q, want %q", layout.Description, want)
	}
	wantStats := []string{"Rating: 4.8 (247 reviews)", "8 weeks"}
	if !reflect.DeepEqual(layout.Stats, wantStats) {
		t.Errorf("Stats = %q, want %q", layout.Stats, wantStats)
	}
	if layout.Footer != "StartHub Academy" || layout.Price != "$299" {
		t.Errorf("footer = %q / %q", layout.Footer, layout.Price)
	}
}

func TestComposeShortDescriptionHasNoEllipsis(t *testing.T) {
	fixture, err := catalog.New([]catalog.Course{{
		Slug:        "tiny",
		Name:        "Tiny",
		Description: "Fits easily.",
		Rating:      4,
		Price:       10,
	}})
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	r := newTestRenderer(t, fixture)

	layout, err := r.Compose("tiny")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if layout.Description != "Fits easily." {
		t.Errorf("Description = %q, want it unchanged", layout.Description)
	}
}

func TestComposeNotFound(t *testing.T) {
	r := newTestRenderer(t, catalog.Default())
	if _, err := r.Compose("nonexistent"); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Compose(nonexistent) error = %v, want ErrCourseNotFound", err)
	}
	if _, err := r.Render("nonexistent"); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Render(nonexistent) error = %v, want ErrCourseNotFound", err)
	}
}

func TestComposeSiteTracksCatalogSize(t *testing.T) {
	r := newTestRenderer(t, catalog.Default())
	layout, err := r.Compose("")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if layout.Kind != KindSite {
		t.Errorf("Kind = %v, want KindSite", layout.Kind)
	}
	if layout.Title != "Master Your Startup Journey" {
		t.Errorf("Title = %q", layout.Title)
	}
	wantStats := []string{"3 Courses", "Rating: 4.8", "Expert Instructors"}
	if !reflect.DeepEqual(layout.Stats, wantStats) {
		t.Errorf("Stats = %q, want %q", layout.Stats, wantStats)
	}

	single, err := catalog.New(catalog.Default().ListAll()[:1])
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	layout, err = newTestRenderer(t, single).Compose("")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if layout.Stats[0] != "1 Courses" {
		t.Errorf("course count stat = %q, want %q", layout.Stats[0], "1 Courses")
	}
}

func TestRenderProducesPNG(t *testing.T) {
	r := newTestRenderer(t, catalog.Default())
	for _, slug := range []string{"", "technical-founder-bootcamp"} {
		data, err := r.Render(slug)
		if err != nil {
			t.Fatalf("Render(%q) failed: %v", slug, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Render(%q) did not produce a PNG: %v", slug, err)
		}
		if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
			t.Errorf("Render(%q) size = %dx%d, want %dx%d", slug, b.Dx(), b.Dy(), Width, Height)
		}
		if r, _, _, _ := img.At(2, 2).RGBA(); r>>8 > 0x20 {
			t.Errorf("Render(%q) corner should be teal, red channel = %#x", slug, r>>8)
		}
		if r, g, b, _ := img.At(110, Height-70).RGBA(); r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
			t.Errorf("Render(%q) card should be white, got %#x %#x %#x", slug, r>>8, g>>8, b>>8)
		}
	}
}

func TestWrapKeepsWords(t *testing.T) {
	r := newTestRenderer(t, catalog.Default())
	fs := &faces{r: r}
	defer fs.close()
	face, err := fs.get(false, 24)
	if err != nil {
		t.Fatalf("face: %v", err)
	}
	text := "Learn the essential skills to turn your startup idea into reality"
	lines := wrap(face, text, 300)
	if len(lines) < 2 {
		t.Fatalf("expected text to wrap, got %q", lines)
	}
	if strings.Join(lines, " ") != text {
		t.Errorf("wrapped lines lost words: %q", lines)
	}
	for _, line := range lines {
		if strings.Contains(line, " ") && textWidth(face, line) > 300 {
			t.Errorf("line %q is wider than 300px", line)
		}
	}
}
