package postgres

import (
	"context"
	"errors"
	"fmt"

	"chore-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	memberExistsQuery      = `SELECT true FROM members WHERE id=$1`
	memberAssignmentsQuery = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE completed),
       COUNT(*) FILTER (WHERE late),
       COUNT(*) FILTER (WHERE late AND NOT completed)
FROM assignments
WHERE member_id = $1`
	memberRatingsQuery = `SELECT COUNT(*), COALESCE(AVG(rating), 0)::float8 FROM ratings WHERE ratee_id = $1`
)

// MemberStats returns assignment and rating totals for a member.
func (p *Postgres) MemberStats(ctx context.Context, memberID string) (entities.MemberStats, error) {
	res := entities.MemberStats{MemberID: memberID}

	var exists bool
	if err := p.db.QueryRow(ctx, memberExistsQuery, memberID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, entities.ErrMemberNotFound
		}
		return res, fmt.Errorf("check member: %w", err)
	}

	if err := p.db.QueryRow(ctx, memberAssignmentsQuery, memberID).
		Scan(&res.Assigned, &res.Completed, &res.LateFlagged, &res.LateOpen); err != nil {
		return res, fmt.Errorf("member assignment stats: %w", err)
	}

	if err := p.db.QueryRow(ctx, memberRatingsQuery, memberID).
		Scan(&res.RatingsReceived, &res.AverageScore); err != nil {
		return res, fmt.Errorf("member rating stats: %w", err)
	}

	return res, nil
}
