package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

const (
	assignmentColumns = `a.id, a.member_id, a.chore_id, a.week_start_date, a.completed, a.late, a.subtasks_completed`

	selectAssignmentQuery = `SELECT ` + assignmentColumns + ` FROM assignments a WHERE a.id=?`
	insertAssignmentQuery = `
INSERT INTO assignments(id, member_id, chore_id, week_start_date, completed, late, subtasks_completed)
VALUES (?, ?, ?, ?, ?, ?, ?)
`
	updateProgressQuery = `UPDATE assignments SET subtasks_completed = ?, completed = ? WHERE id = ?`
	markLateQuery       = `
UPDATE assignments
SET late = 1
WHERE week_start_date = ? AND completed = 0 AND late = 0
`
	detailsFromClause = `
FROM assignments a
JOIN members m ON m.id = a.member_id
JOIN chores c ON c.id = a.chore_id`
)

// ListAssignments returns assignments matching the filter.
func (s *SQLite) ListAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error) {
	where, args := buildAssignmentFilter(filter)
	query := "SELECT " + assignmentColumns + " FROM assignments a " + where + " ORDER BY a.week_start_date, a.chore_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Errorw("failed to list assignments", "error", err, "cycle", filter.Cycle)
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	res := make([]entities.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return res, nil
}

// ListAssignmentDetails returns assignments joined with their member and chore.
func (s *SQLite) ListAssignmentDetails(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentDetails, error) {
	where, args := buildAssignmentFilter(filter)
	query := "SELECT " + assignmentColumns + ", m.id, m.name, m.position, m.created_at, c.id, c.name, c.subtasks" +
		detailsFromClause + " " + where + " ORDER BY a.week_start_date, c.name, a.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Errorw("failed to list assignment details", "error", err, "cycle", filter.Cycle)
		return nil, fmt.Errorf("list assignment details: %w", err)
	}
	defer func() { _ = rows.Close() }()

	res := make([]entities.AssignmentDetails, 0)
	for rows.Next() {
		var d entities.AssignmentDetails
		var cycle, completedRaw, memberCreated, choreSubtasks string
		if err := rows.Scan(
			&d.ID, &d.MemberID, &d.ChoreID, &cycle, &d.Completed, &d.Late, &completedRaw,
			&d.Member.ID, &d.Member.Name, &d.Member.Position, &memberCreated,
			&d.Chore.ID, &d.Chore.Name, &choreSubtasks,
		); err != nil {
			return nil, fmt.Errorf("scan assignment details: %w", err)
		}
		d.Cycle = calendar.CycleKey(cycle)
		if d.SubtasksCompleted, err = decodeList(completedRaw); err != nil {
			return nil, err
		}
		if d.Chore.Subtasks, err = decodeList(choreSubtasks); err != nil {
			return nil, err
		}
		if d.Member.CreatedAt, err = parseCreatedAt(memberCreated); err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignment details: %w", err)
	}
	return res, nil
}

// GetAssignment returns an assignment by id.
func (s *SQLite) GetAssignment(ctx context.Context, assignmentID string) (*entities.Assignment, error) {
	a, err := scanAssignment(s.db.QueryRowContext(ctx, selectAssignmentQuery, assignmentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrAssignmentNotFound
		}
		s.log.Errorw("failed to get assignment", "error", err, "assignment_id", assignmentID)
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// InsertAssignments writes the whole batch in one transaction.
func (s *SQLite) InsertAssignments(ctx context.Context, batch []entities.Assignment) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, a := range batch {
		subtasks, err := encodeList(a.SubtasksCompleted)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertAssignmentQuery,
			a.ID, a.MemberID, a.ChoreID, string(a.Cycle), a.Completed, a.Late, subtasks,
		); err != nil {
			s.log.Errorw("failed to insert assignment", "error", err, "chore_id", a.ChoreID, "cycle", a.Cycle)
			switch {
			case isUniqueViolation(err):
				return fmt.Errorf("%w: chore %s in %s", entities.ErrCycleAlreadyRotated, a.ChoreID, a.Cycle)
			case isForeignKeyViolation(err):
				return fmt.Errorf("%w: %s", entities.ErrChoreNotFound, a.ChoreID)
			}
			return fmt.Errorf("insert assignment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assignments: %w", err)
	}

	s.log.Infow("assignments inserted", "count", len(batch), "cycle", batch[0].Cycle)
	return nil
}

// UpdateAssignmentProgress stores the completed sub-tasks and completion flag.
func (s *SQLite) UpdateAssignmentProgress(ctx context.Context, assignmentID string, subtasks []string, completed bool) (*entities.Assignment, error) {
	raw, err := encodeList(subtasks)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, updateProgressQuery, raw, completed, assignmentID)
	if err != nil {
		s.log.Errorw("failed to update assignment progress", "error", err, "assignment_id", assignmentID)
		return nil, fmt.Errorf("update assignment progress: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update assignment progress: %w", err)
	} else if n == 0 {
		return nil, entities.ErrAssignmentNotFound
	}

	a, err := scanAssignment(tx.QueryRowContext(ctx, selectAssignmentQuery, assignmentID))
	if err != nil {
		return nil, fmt.Errorf("reload assignment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assignment progress: %w", err)
	}
	return &a, nil
}

// MarkLate flags the cycle's incomplete and unflagged assignments.
func (s *SQLite) MarkLate(ctx context.Context, cycle calendar.CycleKey) (int64, error) {
	res, err := s.db.ExecContext(ctx, markLateQuery, string(cycle))
	if err != nil {
		s.log.Errorw("failed to mark late", "error", err, "cycle", cycle)
		return 0, fmt.Errorf("mark late: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark late: %w", err)
	}
	s.log.Infow("late assignments marked", "cycle", cycle, "count", n)
	return n, nil
}

func scanAssignment(row scanner) (entities.Assignment, error) {
	var a entities.Assignment
	var cycle, raw string
	if err := row.Scan(&a.ID, &a.MemberID, &a.ChoreID, &cycle, &a.Completed, &a.Late, &raw); err != nil {
		return a, err
	}
	a.Cycle = calendar.CycleKey(cycle)
	list, err := decodeList(raw)
	if err != nil {
		return a, err
	}
	a.SubtasksCompleted = list
	return a, nil
}

func buildAssignmentFilter(filter entities.AssignmentFilter) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	if filter.Cycle != "" {
		conditions = append(conditions, "a.week_start_date = ?")
		args = append(args, string(filter.Cycle))
	}
	if filter.MemberID != "" {
		conditions = append(conditions, "a.member_id = ?")
		args = append(args, filter.MemberID)
	}
	if filter.ExcludeMember != "" {
		conditions = append(conditions, "a.member_id <> ?")
		args = append(args, filter.ExcludeMember)
	}
	if filter.Completed != nil {
		conditions = append(conditions, "a.completed = ?")
		args = append(args, *filter.Completed)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
