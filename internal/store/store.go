// Package store archives computed annual reviews in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/naka-gawa/github-annual-review/internal/domain"
	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNotFound is returned by Load when no review is archived for the login and year.
var ErrNotFound = errors.New("review not found")

const schema = `
CREATE TABLE IF NOT EXISTS reviews (
	login         TEXT    NOT NULL COLLATE NOCASE,
	year          INTEGER NOT NULL,
	generated_at  TEXT    NOT NULL,
	total_commits INTEGER NOT NULL,
	total_stars   INTEGER NOT NULL,
	payload       TEXT    NOT NULL,
	PRIMARY KEY (login, year)
)`

// Entry is one archived review as listed by List.
type Entry struct {
	Login        string
	Year         int
	GeneratedAt  time.Time
	TotalCommits int
	TotalStars   int
}

// Store is a SQLite-backed archive of annual reviews.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the archive at path, creating parent directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory %q: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open review store at %q: %w", path, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize review store schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives the review, replacing any earlier review of the same login and year.
func (s *Store) Save(ctx context.Context, review *domain.AnnualReview) error {
	payload, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("failed to encode review: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reviews (login, year, generated_at, total_commits, total_stars, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (login, year) DO UPDATE SET
			generated_at  = excluded.generated_at,
			total_commits = excluded.total_commits,
			total_stars   = excluded.total_stars,
			payload       = excluded.payload`,
		review.User.Login, review.Year, s.now().UTC().Format(time.RFC3339),
		review.TotalCommits, review.TotalStars, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save review of %s for %d: %w", review.User.Login, review.Year, err)
	}
	return nil
}

// Load returns the archived review of login for year.
func (s *Store) Load(ctx context.Context, login string, year int) (*domain.AnnualReview, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM reviews WHERE login = ? AND year = ?`, login, year).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s for %d", ErrNotFound, login, year)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load review of %s for %d: %w", login, year, err)
	}

	var review domain.AnnualReview
	if err := json.Unmarshal([]byte(payload), &review); err != nil {
		return nil, fmt.Errorf("failed to decode review of %s for %d: %w", login, year, err)
	}
	return &review, nil
}

// List returns the archived reviews, newest year first. An empty login lists every user.
func (s *Store) List(ctx context.Context, login string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT login, year, generated_at, total_commits, total_stars
		FROM reviews
		WHERE ? = '' OR login = ?
		ORDER BY year DESC, login ASC`, login, login)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var generatedAt string
		if err := rows.Scan(&e.Login, &e.Year, &generatedAt, &e.TotalCommits, &e.TotalStars); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		if e.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt); err != nil {
			return nil, fmt.Errorf("invalid generated_at %q for %s/%d: %w", generatedAt, e.Login, e.Year, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
