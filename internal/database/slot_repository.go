package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrEmptySlotName is returned when a slot is addressed without a name
var ErrEmptySlotName = errors.New("slot name cannot be empty")

// SlotStore is durable storage made of named slots, each holding one value
// that is always overwritten as a whole.
type SlotStore interface {
	// Get returns the slot value and whether the slot exists
	Get(ctx context.Context, name string) (string, bool, error)
	// Set overwrites the slot value
	Set(ctx context.Context, name, value string) error
	// Delete removes the slot; deleting a missing slot is not an error
	Delete(ctx context.Context, name string) error
}

// Compile-time verification that *SlotRepo implements SlotStore
var _ SlotStore = (*SlotRepo)(nil)

// SlotRepo handles all slot-related database operations.
type SlotRepo struct {
	db *sqlx.DB
}

// NewSlotRepo wraps an open database
func NewSlotRepo(db *sqlx.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Get reads the named slot
func (r *SlotRepo) Get(ctx context.Context, name string) (string, bool, error) {
	if strings.TrimSpace(name) == "" {
		return "", false, ErrEmptySlotName
	}

	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM slots WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %q: %w", name, err)
	}
	return value, true, nil
}

// Set upserts the named slot
func (r *SlotRepo) Set(ctx context.Context, name, value string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySlotName
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, name, value)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", name, err)
	}
	return nil
}

// Delete removes the named slot
func (r *SlotRepo) Delete(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySlotName
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting slot %q: %w", name, err)
	}
	return nil
}
