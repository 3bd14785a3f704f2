package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chore-app/internal/entities"
)

const (
	memberExistsQuery      = `SELECT 1 FROM members WHERE id=?`
	memberAssignmentsQuery = `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN late = 1 THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN late = 1 AND completed = 0 THEN 1 ELSE 0 END), 0)
FROM assignments
WHERE member_id = ?`
	memberRatingsQuery = `SELECT COUNT(*), COALESCE(AVG(rating), 0.0) FROM ratings WHERE ratee_id = ?`
)

// MemberStats returns assignment and rating totals for a member.
func (s *SQLite) MemberStats(ctx context.Context, memberID string) (entities.MemberStats, error) {
	res := entities.MemberStats{MemberID: memberID}

	var exists int
	if err := s.db.QueryRowContext(ctx, memberExistsQuery, memberID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, entities.ErrMemberNotFound
		}
		return res, fmt.Errorf("check member: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, memberAssignmentsQuery, memberID).
		Scan(&res.Assigned, &res.Completed, &res.LateFlagged, &res.LateOpen); err != nil {
		return res, fmt.Errorf("member assignment stats: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, memberRatingsQuery, memberID).
		Scan(&res.RatingsReceived, &res.AverageScore); err != nil {
		return res, fmt.Errorf("member rating stats: %w", err)
	}

	return res, nil
}
