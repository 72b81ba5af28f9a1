package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is a SQLite file the course table can be authored in. The server
// only reads it once at startup; see Load.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the schema.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS courses (
    position INTEGER NOT NULL,
    id TEXT NOT NULL,
    slug TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    provider_name TEXT NOT NULL,
    provider_url TEXT NOT NULL,
    instructor TEXT NOT NULL,
    duration TEXT NOT NULL,
    level TEXT NOT NULL,
    price REAL NOT NULL,
    currency TEXT NOT NULL,
    rating REAL NOT NULL,
    total_reviews INTEGER NOT NULL,
    image TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    syllabus TEXT NOT NULL,
    learning_outcomes TEXT NOT NULL,
    category TEXT NOT NULL
);
`)
	return err
}

// SaveCourses replaces the stored table with courses, keeping their order.
func (s *Store) SaveCourses(courses []Course) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM courses`); err != nil {
		return err
	}
	for i, c := range courses {
		syllabus, err := json.Marshal(c.Syllabus)
		if err != nil {
			return fmt.Errorf("encode syllabus for %q: %w", c.Slug, err)
		}
		outcomes, err := json.Marshal(c.LearningOutcomes)
		if err != nil {
			return fmt.Errorf("encode outcomes for %q: %w", c.Slug, err)
		}
		_, err = tx.Exec(`INSERT INTO courses (position, id, slug, name, description, provider_name, provider_url, instructor, duration, level, price, currency, rating, total_reviews, image, start_date, end_date, syllabus, learning_outcomes, category)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, c.ID, c.Slug, c.Name, c.Description, c.Provider.Name, c.Provider.URL, c.Instructor, c.Duration, c.Level,
			c.Price, c.Currency, c.Rating, c.TotalReviews, c.Image, c.StartDate, c.EndDate, string(syllabus), string(outcomes), c.Category)
		if err != nil {
			return fmt.Errorf("insert %q: %w", c.Slug, err)
		}
	}
	return tx.Commit()
}

// LoadCourses returns every stored course in authored order.
func (s *Store) LoadCourses() ([]Course, error) {
	rows, err := s.db.Query(`SELECT id, slug, name, description, provider_name, provider_url, instructor, duration, level, price, currency, rating, total_reviews, image, start_date, end_date, syllabus, learning_outcomes, category FROM courses ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		var syllabus, outcomes string
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.Provider.Name, &c.Provider.URL, &c.Instructor,
			&c.Duration, &c.Level, &c.Price, &c.Currency, &c.Rating, &c.TotalReviews, &c.Image, &c.StartDate, &c.EndDate,
			&syllabus, &outcomes, &c.Category); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(syllabus), &c.Syllabus); err != nil {
			return nil, fmt.Errorf("decode syllabus for %q: %w", c.Slug, err)
		}
		if err := json.Unmarshal([]byte(outcomes), &c.LearningOutcomes); err != nil {
			return nil, fmt.Errorf("decode outcomes for %q: %w", c.Slug, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// Load reads the course table from the SQLite file at path and returns it
// as a validated, immutable Catalog.
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	s, err := OpenStore(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer s.Close()

	courses, err := s.LoadCourses()
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	return New(courses)
}

// Seed writes the compiled-in course table to the SQLite file at path.
func Seed(path string) error {
	s, err := OpenStore(path)
	if err != nil {
		return fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer s.Close()
	return s.SaveCourses(builtinCourses)
}
