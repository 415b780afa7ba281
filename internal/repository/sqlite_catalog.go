package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/regwise/internal/db"
	"github.com/alexanderramin/regwise/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
// Reads never hold two result sets open at once, so it works on a
// single-connection pool.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

var _ CatalogRepo = (*SQLiteCatalogRepo)(nil)

// Save writes a snapshot and everything under it. Callers wrap it in a
// UnitOfWork so a failed import leaves nothing behind.
func (r *SQLiteCatalogRepo) Save(ctx context.Context, data *domain.CatalogData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO catalog_snapshots (id, source, imported_at, course_count) VALUES (?, ?, ?, ?)`,
		data.ID, data.Source, data.ImportedAt.UTC().Format(timeLayout), len(data.Courses))
	if err != nil {
		return fmt.Errorf("inserting catalog snapshot: %w", err)
	}

	for _, c := range data.Courses {
		if err := r.insertCourse(ctx, data.ID, c); err != nil {
			return err
		}
	}

	for tag, keys := range data.CoreIndex {
		for i, key := range keys {
			_, err := r.db.ExecContext(ctx,
				`INSERT OR IGNORE INTO core_index (snapshot_id, tag, course_key, position) VALUES (?, ?, ?, ?)`,
				data.ID, tag, key, i)
			if err != nil {
				return fmt.Errorf("inserting core index %s: %w", tag, err)
			}
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) insertCourse(ctx context.Context, snapshotID string, c domain.Course) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (snapshot_id, course_key, title, credits, prerequisites, description, core_codes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snapshotID, c.Key, c.Title, c.Credits, c.Prerequisites, c.Description, joinCodes(c.CoreCodes))
	if err != nil {
		return fmt.Errorf("inserting course %s: %w", c.Key, err)
	}

	for pos, s := range c.Sections {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO sections (snapshot_id, course_key, position, section_number, reg_index, is_open, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			snapshotID, c.Key, pos, s.Number, s.Index, boolToInt(s.Open), s.Notes)
		if err != nil {
			return fmt.Errorf("inserting section %s/%s: %w", c.Key, s.Index, err)
		}
		sectionID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading section id: %w", err)
		}
		for mpos, m := range s.Meetings {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO meetings (section_id, position, day, start_min, end_min, campus, building, room, mode)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				sectionID, mpos, int(m.Day), m.Start, m.End, m.Campus, m.Building, m.Room, m.Mode)
			if err != nil {
				return fmt.Errorf("inserting meeting for section %s: %w", s.Index, err)
			}
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) LoadLatest(ctx context.Context) (*domain.CatalogData, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM catalog_snapshots ORDER BY imported_at DESC, rowid DESC LIMIT 1`).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("catalog snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("finding latest snapshot: %w", err)
	}
	return r.Load(ctx, id)
}

func (r *SQLiteCatalogRepo) Load(ctx context.Context, id string) (*domain.CatalogData, error) {
	var source, importedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT source, imported_at FROM catalog_snapshots WHERE id = ?`, id).Scan(&source, &importedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("catalog snapshot %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	data := &domain.CatalogData{
		ID:         id,
		Source:     source,
		ImportedAt: parseTime(importedAt),
		CoreIndex:  make(map[string][]string),
	}

	courses, err := r.loadCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadSections(ctx, id, courses); err != nil {
		return nil, err
	}
	data.Courses = courses

	if err := r.loadCoreIndex(ctx, id, data.CoreIndex); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *SQLiteCatalogRepo) loadCourses(ctx context.Context, id string) ([]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_key, title, credits, prerequisites, description, core_codes
		FROM courses WHERE snapshot_id = ? ORDER BY course_key`, id)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		var codes string
		if err := rows.Scan(&c.Key, &c.Title, &c.Credits, &c.Prerequisites, &c.Description, &codes); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		c.CoreCodes = splitCodes(codes)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

type sectionRow struct {
	id      int64
	section domain.Section
}

// loadSections attaches sections and their meetings to courses, which must be
// sorted by key.
func (r *SQLiteCatalogRepo) loadSections(ctx context.Context, id string, courses []domain.Course) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, course_key, section_number, reg_index, is_open, notes
		FROM sections WHERE snapshot_id = ? ORDER BY course_key, position`, id)
	if err != nil {
		return fmt.Errorf("listing sections: %w", err)
	}
	var sections []sectionRow
	for rows.Next() {
		var sr sectionRow
		var open int
		s := &sr.section
		if err := rows.Scan(&sr.id, &s.CourseKey, &s.Number, &s.Index, &open, &s.Notes); err != nil {
			rows.Close()
			return fmt.Errorf("scanning section: %w", err)
		}
		s.Open = intToBool(open)
		sections = append(sections, sr)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("iterating sections: %w", err)
	}

	meetings, err := r.loadMeetings(ctx, id)
	if err != nil {
		return err
	}

	ci := 0
	for _, sr := range sections {
		for ci < len(courses) && courses[ci].Key != sr.section.CourseKey {
			ci++
		}
		if ci == len(courses) {
			return fmt.Errorf("section %s references missing course %s", sr.section.Index, sr.section.CourseKey)
		}
		sr.section.Meetings = meetings[sr.id]
		courses[ci].Sections = append(courses[ci].Sections, sr.section)
	}
	return nil
}

func (r *SQLiteCatalogRepo) loadMeetings(ctx context.Context, id string) (map[int64][]domain.Meeting, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.section_id, m.day, m.start_min, m.end_min, m.campus, m.building, m.room, m.mode
		FROM meetings m
		JOIN sections s ON m.section_id = s.id
		WHERE s.snapshot_id = ?
		ORDER BY m.section_id, m.position`, id)
	if err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.Meeting)
	for rows.Next() {
		var sectionID int64
		var day int
		var m domain.Meeting
		if err := rows.Scan(&sectionID, &day, &m.Start, &m.End, &m.Campus, &m.Building, &m.Room, &m.Mode); err != nil {
			return nil, fmt.Errorf("scanning meeting: %w", err)
		}
		m.Day = time.Weekday(day)
		out[sectionID] = append(out[sectionID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meetings: %w", err)
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) loadCoreIndex(ctx context.Context, id string, index map[string][]string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag, course_key FROM core_index WHERE snapshot_id = ? ORDER BY tag, position`, id)
	if err != nil {
		return fmt.Errorf("listing core index: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag, key string
		if err := rows.Scan(&tag, &key); err != nil {
			return fmt.Errorf("scanning core index: %w", err)
		}
		index[tag] = append(index[tag], key)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating core index: %w", err)
	}
	return nil
}

// List returns stored snapshots, newest first.
func (r *SQLiteCatalogRepo) List(ctx context.Context) ([]domain.SnapshotInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, imported_at, course_count
		FROM catalog_snapshots ORDER BY imported_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []domain.SnapshotInfo
	for rows.Next() {
		var info domain.SnapshotInfo
		var importedAt string
		if err := rows.Scan(&info.ID, &info.Source, &importedAt, &info.CourseCount); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		info.ImportedAt = parseTime(importedAt)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM catalog_snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("catalog snapshot %s: %w", id, ErrNotFound)
	}
	return nil
}
