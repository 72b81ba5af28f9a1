package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/starthub/academy/catalog"
	"github.com/starthub/academy/ogimage"
	"github.com/starthub/academy/seo"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	_ = godotenv.Load()

	var err error
	switch os.Args[1] {
	case "seed":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: academyctl seed <db-path>")
			os.Exit(1)
		}
		err = runSeed(os.Args[2])
	case "params":
		err = runParams()
	case "meta":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: academyctl meta <slug>")
			os.Exit(1)
		}
		err = runMeta(os.Args[2])
	case "og":
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "Usage: academyctl og <slug|-> <out.png>")
			os.Exit(1)
		}
		err = runPreview(os.Args[2], os.Args[3])
	case "version":
		fmt.Printf("academyctl %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`academyctl - authoring tools for the StartHub Academy catalog

Usage:
  academyctl <command> [arguments]

Commands:
  seed <db-path>         Write the built-in courses to a SQLite catalog
  params                 Print every course slug, one per line
  meta <slug>            Print a course's page metadata and JSON-LD
  og <slug|-> <out.png>  Render a preview image ("-" for the site card)
  version                Print the academyctl version
  help                   Show this help message

Environment:
  ACADEMY_CATALOG_DB     Read courses from this SQLite catalog
  ACADEMY_BASE_URL       Canonical URL override
  ACADEMY_ENV            development or production`)
}

func repository() (catalog.Repository, error) {
	if path := os.Getenv("ACADEMY_CATALOG_DB"); path != "" {
		return catalog.Load(path)
	}
	return catalog.Default(), nil
}

func baseURL() string {
	return seo.ResolveBaseURL(os.Getenv("ACADEMY_BASE_URL"), os.Getenv("ACADEMY_ENV"))
}

func runSeed(path string) error {
	if err := catalog.Seed(path); err != nil {
		return err
	}
	fmt.Printf("Seeded %s\n", path)
	return nil
}

func runParams() error {
	repo, err := repository()
	if err != nil {
		return err
	}
	for _, slug := range catalog.Slugs(repo) {
		fmt.Println(slug)
	}
	return nil
}

func runMeta(slug string) error {
	repo, err := repository()
	if err != nil {
		return err
	}
	base := baseURL()
	out := struct {
		Metadata       seo.Metadata      `json:"metadata"`
		StructuredData *seo.CourseSchema `json:"structuredData,omitempty"`
	}{}

	course, ok := repo.FindBySlug(slug)
	if ok {
		out.Metadata = seo.ForCourse(&course, base)
		ld := seo.CourseStructuredData(course, base)
		out.StructuredData = &ld
	} else {
		out.Metadata = seo.ForCourse(nil, base)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runPreview(slug, outPath string) error {
	repo, err := repository()
	if err != nil {
		return err
	}
	if slug == "-" {
		slug = ""
	}
	r, err := ogimage.NewRenderer(repo, ogimage.Options{})
	if err != nil {
		return err
	}
	data, err := r.Render(slug)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(data))
	return nil
}
