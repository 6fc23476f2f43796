package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"datepick/internal/datelike"
	"datepick/internal/interval"
)

// Profile is a named set of selectable ranges plus the widget settings the
// picker should start with. Empty settings fall back to the config file.
type Profile struct {
	Name string `json:"name"`
	// Ranges are canonical [start, end] epoch-millisecond pairs.
	Ranges    [][2]int64      `json:"ranges"`
	Settings  ProfileSettings `json:"settings"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ProfileSettings struct {
	Language   string `json:"language,omitempty"`
	Type       string `json:"type,omitempty"`
	Format     string `json:"format,omitempty"`
	TimePicker bool   `json:"timePicker,omitempty"`
}

// Set returns the profile's ranges as an interval set.
func (p Profile) Set() *interval.Set {
	return interval.New(p.Ranges...)
}

// Values returns the ranges in the form picker.Options expects. A profile
// without ranges yields an empty, non-nil slice: nothing is selectable.
func (p Profile) Values() [][]datelike.Value {
	out := make([][]datelike.Value, 0, len(p.Ranges))
	for _, r := range p.Ranges {
		out = append(out, []datelike.Value{datelike.Millis(r[0]), datelike.Millis(r[1])})
	}
	return out
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("profile name is required")
	}
	return name, nil
}

// SaveProfile inserts or replaces p. Its ranges are stored canonically
// merged.
func (s *Store) SaveProfile(ctx context.Context, p Profile) (Profile, error) {
	name, err := normalizeName(p.Name)
	if err != nil {
		return Profile{}, err
	}
	p.Name = name
	p.Ranges = p.Set().Pairs()
	nowMs := s.nowMs()
	p.UpdatedAt = time.UnixMilli(nowMs).UTC()
	raw, err := json.Marshal(p)
	if err != nil {
		return Profile{}, fmt.Errorf("save profile %s: %w", name, err)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO profiles(name, json, updated_at_unixms) VALUES(?, ?, ?)`, name, string(raw), nowMs); err != nil {
		return Profile{}, fmt.Errorf("save profile %s: %w", name, err)
	}
	return p, nil
}

// Profile returns the named profile.
func (s *Store) Profile(ctx context.Context, name string) (Profile, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Profile{}, err
	}
	var js string
	err = s.db.QueryRowContext(ctx, `SELECT json FROM profiles WHERE name = ?`, name).Scan(&js)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, errNotFound("profile", name)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", name, err)
	}
	var p Profile
	if err := json.Unmarshal([]byte(js), &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", name, err)
	}
	return p, nil
}

// Profiles lists every profile ordered by name.
func (s *Store) Profiles(ctx context.Context) ([]Profile, error) {
	out, err := readJSONRows[Profile](ctx, s.db, `SELECT json FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if out == nil {
		out = []Profile{}
	}
	return out, nil
}

// UpdateProfile loads the named profile, applies fn and saves the result.
// A missing profile starts out empty when create is set.
func (s *Store) UpdateProfile(ctx context.Context, name string, create bool, fn func(*Profile) error) (Profile, error) {
	p, err := s.Profile(ctx, name)
	if err != nil {
		if !create || !IsNotFound(err) {
			return Profile{}, err
		}
		p = Profile{Name: strings.TrimSpace(name)}
	}
	if err := fn(&p); err != nil {
		return Profile{}, err
	}
	return s.SaveProfile(ctx, p)
}

// DeleteProfile removes the named profile and its history.
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errNotFound("profile", name)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM picks WHERE profile = ?`, name); err != nil {
		return fmt.Errorf("delete history for %s: %w", name, err)
	}
	return tx.Commit()
}

func readJSONRows[T any](ctx context.Context, db *sql.DB, query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal([]byte(js), &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
