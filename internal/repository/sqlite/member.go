package sqlite

import (
	"context"
	"fmt"
	"time"

	"chore-app/internal/entities"
)

const (
	listMembersQuery  = `SELECT id, name, position, created_at FROM members ORDER BY position, created_at, id`
	upsertMemberQuery = `
INSERT INTO members(id, name, position, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET name = excluded.name, position = excluded.position
RETURNING id, name, position, created_at
`
)

// ListMembers returns the roster in rotation order.
func (s *SQLite) ListMembers(ctx context.Context) ([]entities.Member, error) {
	rows, err := s.db.QueryContext(ctx, listMembersQuery)
	if err != nil {
		s.log.Errorw("failed to list members", "error", err)
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	members := make([]entities.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

// UpsertMember inserts a member or renames/reorders an existing one.
func (s *SQLite) UpsertMember(ctx context.Context, m entities.Member) (*entities.Member, error) {
	createdAt := s.now().UTC().Format(createdAtLayout)
	res, err := scanMember(s.db.QueryRowContext(ctx, upsertMemberQuery, m.ID, m.Name, m.Position, createdAt))
	if err != nil {
		s.log.Errorw("failed to upsert member", "error", err, "member_id", m.ID)
		return nil, fmt.Errorf("upsert member: %w", err)
	}
	s.log.Infow("member upserted", "member_id", res.ID, "position", res.Position)
	return &res, nil
}

func scanMember(row scanner) (entities.Member, error) {
	var m entities.Member
	var createdAt string
	if err := row.Scan(&m.ID, &m.Name, &m.Position, &createdAt); err != nil {
		return m, err
	}
	ts, err := parseCreatedAt(createdAt)
	if err != nil {
		return m, err
	}
	m.CreatedAt = ts
	return m, nil
}

func parseCreatedAt(raw string) (time.Time, error) {
	ts, err := time.Parse(createdAtLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at: %w", err)
	}
	return ts, nil
}
