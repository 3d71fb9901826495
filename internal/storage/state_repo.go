package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// StateKey is the key the serialized ProgressState lives under.
const StateKey = "wellness-quest-state-v2"

type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load reads the persisted ProgressState. An absent row yields a fresh
// default state; an unparseable blob is logged and also falls back to the
// default, so a corrupt store never takes the session down.
func (r *StateRepo) Load(ctx context.Context) (*ProgressState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, StateKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return DefaultState(), nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}

	var s ProgressState
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		slog.Warn("stored state is unreadable, starting fresh",
			slog.String("key", StateKey),
			slog.Any("error", err))
		return DefaultState(), nil
	}
	s.normalize()
	return &s, nil
}

// Save writes the ProgressState back as one JSON blob.
func (r *StateRepo) Save(ctx context.Context, s *ProgressState) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("state marshal: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, StateKey, string(raw))
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}
