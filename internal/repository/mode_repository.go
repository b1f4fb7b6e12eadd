package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const ramadanModeKey = "ramadan_mode"

// ModeRepository persists the Ramadan compression flag under its own key in
// the app_state table, next to (but independent of) the course document.
type ModeRepository struct {
	db *sqlx.DB
}

// NewModeRepository constructs the repository.
func NewModeRepository(db *sqlx.DB) *ModeRepository {
	return &ModeRepository{db: db}
}

// Active returns the stored flag; a missing key reads as false.
func (r *ModeRepository) Active(ctx context.Context) (bool, error) {
	const query = `SELECT value FROM app_state WHERE key = $1`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, ramadanModeKey); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("load ramadan mode: %w", err)
	}

	var active bool
	if err := json.Unmarshal(raw, &active); err != nil {
		return false, fmt.Errorf("decode ramadan mode: %w", err)
	}
	return active, nil
}

// SetActive stores the flag.
func (r *ModeRepository) SetActive(ctx context.Context, active bool) error {
	payload, err := json.Marshal(active)
	if err != nil {
		return fmt.Errorf("encode ramadan mode: %w", err)
	}

	const query = `INSERT INTO app_state (key, value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key)
DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, ramadanModeKey, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("set ramadan mode: %w", err)
	}
	return nil
}
