package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campus-tools/timetable-api/internal/models"
)

const courseStateKey = "courses"

// CourseRepository persists the whole course list as a single JSON document
// in the app_state table. There are no per-course rows or identifiers: every
// mutation is a full read followed by a full replace, and callers address
// courses positionally.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Load returns the stored course list. A missing document reads as an empty
// list, not an error.
func (r *CourseRepository) Load(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT value FROM app_state WHERE key = $1`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, courseStateKey); err != nil {
		if err == sql.ErrNoRows {
			return []models.Course{}, nil
		}
		return nil, fmt.Errorf("load courses: %w", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// ReplaceAll overwrites the stored course list wholesale.
func (r *CourseRepository) ReplaceAll(ctx context.Context, courses []models.Course) error {
	if courses == nil {
		courses = []models.Course{}
	}
	payload, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("encode courses: %w", err)
	}

	const query = `INSERT INTO app_state (key, value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key)
DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, courseStateKey, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("replace courses: %w", err)
	}
	return nil
}
