// Package ledger records every generated survey page together with its
// caption-to-ID table, so a VIDEO ID reported by a rater can be traced back
// to a viewer folder after the folder set has changed.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/surveygen/internal/db"
	"github.com/ziadkadry99/surveygen/internal/viewers"
)

// ErrNotFound is returned when a build or ID is not in the ledger.
var ErrNotFound = errors.New("not found")

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Build is one recorded run of the index generator.
type Build struct {
	ID         string
	CreatedAt  time.Time
	ViewersDir string
	EntryCount int
}

// Caption is one row of a build's caption table.
type Caption struct {
	BuildID string
	VideoID int
	Folder  string
	Kind    viewers.Kind
}

// Store provides access to recorded builds.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// NewBuildID returns a fresh build identifier.
func NewBuildID() string {
	return uuid.New().String()
}

// Record stores a build and its entries in one transaction. If b.ID is empty
// a UUID is generated. The stored build is returned.
func (s *Store) Record(ctx context.Context, b Build, entries []viewers.Entry) (Build, error) {
	if b.ID == "" {
		b.ID = NewBuildID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	b.EntryCount = len(entries)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Build{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO builds (id, created_at, viewers_dir, entry_count)
		VALUES (?, ?, ?, ?)`,
		b.ID, b.CreatedAt.UTC().Format(timeLayout), b.ViewersDir, b.EntryCount)
	if err != nil {
		return Build{}, fmt.Errorf("inserting build: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO build_captions (build_id, video_id, folder, kind)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return Build{}, fmt.Errorf("preparing caption insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, b.ID, e.ID, e.Name, e.Kind.String()); err != nil {
			return Build{}, fmt.Errorf("inserting caption %s: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Build{}, fmt.Errorf("committing build: %w", err)
	}
	return b, nil
}

// Builds returns the most recent builds, newest first. limit <= 0 returns all.
func (s *Store) Builds(ctx context.Context, limit int) ([]Build, error) {
	query := `SELECT id, created_at, viewers_dir, entry_count FROM builds ORDER BY seq DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// Latest returns the newest build.
func (s *Store) Latest(ctx context.Context) (Build, error) {
	builds, err := s.Builds(ctx, 1)
	if err != nil {
		return Build{}, err
	}
	if len(builds) == 0 {
		return Build{}, fmt.Errorf("no builds recorded: %w", ErrNotFound)
	}
	return builds[0], nil
}

// Get returns the build with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Build, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, viewers_dir, entry_count FROM builds WHERE id = ?`, id)
	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Build{}, fmt.Errorf("build %s: %w", id, ErrNotFound)
	}
	return b, err
}

// Lookup resolves a VIDEO ID to its caption row. An empty buildID means the
// latest build.
func (s *Store) Lookup(ctx context.Context, buildID string, videoID int) (Caption, error) {
	if buildID == "" {
		latest, err := s.Latest(ctx)
		if err != nil {
			return Caption{}, err
		}
		buildID = latest.ID
	}

	var (
		c   = Caption{BuildID: buildID, VideoID: videoID}
		tag string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT folder, kind FROM build_captions WHERE build_id = ? AND video_id = ?`,
		buildID, videoID).Scan(&c.Folder, &tag)
	if errors.Is(err, sql.ErrNoRows) {
		return Caption{}, fmt.Errorf("video id %d in build %s: %w", videoID, buildID, ErrNotFound)
	}
	if err != nil {
		return Caption{}, fmt.Errorf("looking up video id: %w", err)
	}
	c.Kind = viewers.ParseKind(tag)
	return c, nil
}

// Captions returns the caption table of a build ordered by VIDEO ID.
func (s *Store) Captions(ctx context.Context, buildID string) ([]Caption, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT video_id, folder, kind FROM build_captions
		WHERE build_id = ? ORDER BY video_id`, buildID)
	if err != nil {
		return nil, fmt.Errorf("querying captions: %w", err)
	}
	defer rows.Close()

	var captions []Caption
	for rows.Next() {
		var (
			c   = Caption{BuildID: buildID}
			tag string
		)
		if err := rows.Scan(&c.VideoID, &c.Folder, &tag); err != nil {
			return nil, fmt.Errorf("scanning caption: %w", err)
		}
		c.Kind = viewers.ParseKind(tag)
		captions = append(captions, c)
	}
	return captions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(row scanner) (Build, error) {
	var (
		b       Build
		created string
	)
	if err := row.Scan(&b.ID, &created, &b.ViewersDir, &b.EntryCount); err != nil {
		return Build{}, err
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return Build{}, fmt.Errorf("parsing created_at %q: %w", created, err)
	}
	b.CreatedAt = t
	return b, nil
}
