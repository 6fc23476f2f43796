package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Pick is one committed value recorded for a profile.
type Pick struct {
	ID        int64     `json:"id"`
	Profile   string    `json:"profile"`
	Value     time.Time `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

const defaultHistoryLimit = 20

// AddPick records v under profile.
func (s *Store) AddPick(ctx context.Context, profile string, v time.Time) (Pick, error) {
	profile, err := normalizeName(profile)
	if err != nil {
		return Pick{}, err
	}
	nowMs := s.nowMs()
	res, err := s.db.ExecContext(ctx, `INSERT INTO picks(profile, value_unixms, created_at_unixms) VALUES(?, ?, ?)`, profile, v.UnixMilli(), nowMs)
	if err != nil {
		return Pick{}, fmt.Errorf("record pick: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Pick{}, fmt.Errorf("record pick: %w", err)
	}
	return Pick{
		ID:        id,
		Profile:   profile,
		Value:     time.UnixMilli(v.UnixMilli()).UTC(),
		CreatedAt: time.UnixMilli(nowMs).UTC(),
	}, nil
}

// RecentPicks returns up to limit picks, newest first. An empty profile
// lists every profile's history; limit <= 0 uses a default of 20.
func (s *Store) RecentPicks(ctx context.Context, profile string, limit int) ([]Pick, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	q := `SELECT id, profile, value_unixms, created_at_unixms FROM picks`
	args := []any{}
	if p := strings.TrimSpace(profile); p != "" {
		q += ` WHERE profile = ?`
		args = append(args, p)
	}
	q += ` ORDER BY created_at_unixms DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	defer rows.Close()

	out := []Pick{}
	for rows.Next() {
		var (
			p             Pick
			valueMs, atMs int64
		)
		if err := rows.Scan(&p.ID, &p.Profile, &valueMs, &atMs); err != nil {
			return nil, fmt.Errorf("list picks: %w", err)
		}
		p.Value = time.UnixMilli(valueMs).UTC()
		p.CreatedAt = time.UnixMilli(atMs).UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	return out, nil
}
