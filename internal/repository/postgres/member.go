package postgres

import (
	"context"
	"fmt"

	"chore-app/internal/entities"
)

const (
	listMembersQuery  = `SELECT id, name, position, created_at FROM members ORDER BY position, created_at, id`
	upsertMemberQuery = `
INSERT INTO members(id, name, position)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, position = EXCLUDED.position
RETURNING id, name, position, created_at
`
)

// ListMembers returns the roster in rotation order.
func (p *Postgres) ListMembers(ctx context.Context) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, listMembersQuery)
	if err != nil {
		p.log.Errorw("failed to list members", "error", err)
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var m entities.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.CreatedAt); err != nil {
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
func (p *Postgres) UpsertMember(ctx context.Context, m entities.Member) (*entities.Member, error) {
	var res entities.Member
	if err := p.db.QueryRow(ctx, upsertMemberQuery, m.ID, m.Name, m.Position).
		Scan(&res.ID, &res.Name, &res.Position, &res.CreatedAt); err != nil {
		p.log.Errorw("failed to upsert member", "error", err, "member_id", m.ID)
		return nil, fmt.Errorf("upsert member: %w", err)
	}
	p.log.Infow("member upserted", "member_id", res.ID, "position", res.Position)
	return &res, nil
}
