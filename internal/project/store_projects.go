package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"beatsync/internal/segments"
)

// CreateProject inserts a new named project and returns it.
func (s *Store) CreateProject(ctx context.Context, name string) (*Project, error) {
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, name, timestamp, timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &Project{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

// GetProjectByName looks a project up by its unique name.
func (s *Store) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM projects WHERE name = ?`, name)
	return scanProject(row)
}

// ListProjects returns all projects ordered by name.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var created, updated string
		if err := rows.Scan(&p.ID, &p.Name, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.CreatedAt, p.UpdatedAt = parseTimestamps(created, updated)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ImportSegments replaces a project's segment list in one transaction.
func (s *Store) ImportSegments(ctx context.Context, projectID string, segs []segments.Segment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM segments WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clear segments: %w", err)
	}

	for _, seg := range segs {
		files, err := json.Marshal(seg.HTMLFiles)
		if err != nil {
			return fmt.Errorf("marshal html files: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO segments (project_id, num, script, html_files) VALUES (?, ?, ?, ?)`,
			projectID, seg.Num, seg.Script, string(files),
		); err != nil {
			return fmt.Errorf("insert segment %d: %w", seg.Num, err)
		}
	}

	if err := touchProject(ctx, tx, projectID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// ListSegments returns a project's segments in script order.
func (s *Store) ListSegments(ctx context.Context, projectID string) ([]segments.Segment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT num, script, html_files FROM segments WHERE project_id = ? ORDER BY num`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	defer rows.Close()

	var segs []segments.Segment
	for rows.Next() {
		var seg segments.Segment
		var files string
		if err := rows.Scan(&seg.Num, &seg.Script, &files); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		if err := json.Unmarshal([]byte(files), &seg.HTMLFiles); err != nil {
			return nil, fmt.Errorf("decode html files for segment %d: %w", seg.Num, err)
		}
		segs = append(segs, seg)
	}
	return segs, rows.Err()
}

// SaveTimings persists an alignment run's resolved segment matches,
// replacing any previous run for the project.
func (s *Store) SaveTimings(ctx context.Context, projectID string, matches []segments.Match) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin timings tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM segment_timings WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clear timings: %w", err)
	}

	for _, match := range matches {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO segment_timings
               (project_id, num, matched, confidence, start_cue, end_cue, start_time, end_time, aligned_at)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			projectID, match.Num, boolToInt(match.Matched), match.Confidence,
			nullableInt(match.StartCueIndex), nullableInt(match.EndCueIndex),
			match.StartTime, match.EndTime, now,
		); err != nil {
			return fmt.Errorf("insert timing for segment %d: %w", match.Num, err)
		}
	}

	if err := touchProject(ctx, tx, projectID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit timings: %w", err)
	}
	return nil
}

// Timings returns the stored alignment results for a project in segment
// order; the list is empty when no run has been saved.
func (s *Store) Timings(ctx context.Context, projectID string) ([]Timing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT num, matched, confidence, start_cue, end_cue, start_time, end_time, aligned_at
         FROM segment_timings WHERE project_id = ? ORDER BY num`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list timings: %w", err)
	}
	defer rows.Close()

	var timings []Timing
	for rows.Next() {
		var t Timing
		var matched int
		var startCue, endCue sql.NullInt64
		var alignedAt string
		if err := rows.Scan(&t.Num, &matched, &t.Confidence, &startCue, &endCue,
			&t.StartTime, &t.EndTime, &alignedAt); err != nil {
			return nil, fmt.Errorf("scan timing: %w", err)
		}
		t.Matched = matched != 0
		if startCue.Valid {
			v := int(startCue.Int64)
			t.StartCueIndex = &v
		}
		if endCue.Valid {
			v := int(endCue.Int64)
			t.EndCueIndex = &v
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, alignedAt); parseErr == nil {
			t.AlignedAt = parsed
		}
		timings = append(timings, t)
	}
	return timings, rows.Err()
}

func scanProject(row *sql.Row) (*Project, error) {
	var p Project
	var created, updated string
	if err := row.Scan(&p.ID, &p.Name, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	p.CreatedAt, p.UpdatedAt = parseTimestamps(created, updated)
	return &p, nil
}

func touchProject(ctx context.Context, tx *sql.Tx, projectID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`UPDATE projects SET updated_at = ? WHERE id = ?`, now, projectID); err != nil {
		return fmt.Errorf("touch project: %w", err)
	}
	return nil
}

func parseTimestamps(created, updated string) (time.Time, time.Time) {
	createdAt, _ := time.Parse(time.RFC3339Nano, created)
	updatedAt, _ := time.Parse(time.RFC3339Nano, updated)
	return createdAt, updatedAt
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
