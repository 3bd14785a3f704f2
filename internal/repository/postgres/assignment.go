package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	assignmentColumns = `a.id, a.member_id, a.chore_id, a.week_start_date::text, a.completed, a.late, a.subtasks_completed`

	selectAssignmentQuery = `SELECT ` + assignmentColumns + ` FROM assignments a WHERE a.id=$1`
	insertAssignmentQuery = `
INSERT INTO assignments(id, member_id, chore_id, week_start_date, completed, late, subtasks_completed)
VALUES ($1, $2, $3, $4::date, $5, $6, $7)
`
	updateProgressQuery = `
UPDATE assignments a
SET subtasks_completed = $2, completed = $3
WHERE a.id = $1
RETURNING ` + assignmentColumns
	markLateQuery = `
UPDATE assignments
SET late = TRUE
WHERE week_start_date = $1::date AND completed = FALSE AND late = FALSE
`
	detailsFromClause = `
FROM assignments a
JOIN members m ON m.id = a.member_id
JOIN chores c ON c.id = a.chore_id`
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// ListAssignments returns assignments matching the filter.
func (p *Postgres) ListAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error) {
	where, args := buildAssignmentFilter(filter)

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(assignmentColumns)
	b.WriteString(" FROM assignments a")
	if where != "" {
		b.WriteByte(' ')
		b.WriteString(where)
	}
	b.WriteString(" ORDER BY a.week_start_date, a.chore_id")

	rows, err := p.db.Query(ctx, b.String(), args...)
	if err != nil {
		p.log.Errorw("failed to list assignments", "error", err, "cycle", filter.Cycle)
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

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
func (p *Postgres) ListAssignmentDetails(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentDetails, error) {
	where, args := buildAssignmentFilter(filter)

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(assignmentColumns)
	b.WriteString(", m.id, m.name, m.position, m.created_at, c.id, c.name, c.subtasks")
	b.WriteString(detailsFromClause)
	if where != "" {
		b.WriteByte(' ')
		b.WriteString(where)
	}
	b.WriteString(" ORDER BY a.week_start_date, c.name, a.id")

	rows, err := p.db.Query(ctx, b.String(), args...)
	if err != nil {
		p.log.Errorw("failed to list assignment details", "error", err, "cycle", filter.Cycle)
		return nil, fmt.Errorf("list assignment details: %w", err)
	}
	defer rows.Close()

	res := make([]entities.AssignmentDetails, 0)
	for rows.Next() {
		var d entities.AssignmentDetails
		var cycle string
		if err := rows.Scan(
			&d.ID, &d.MemberID, &d.ChoreID, &cycle, &d.Completed, &d.Late, &d.SubtasksCompleted,
			&d.Member.ID, &d.Member.Name, &d.Member.Position, &d.Member.CreatedAt,
			&d.Chore.ID, &d.Chore.Name, &d.Chore.Subtasks,
		); err != nil {
			return nil, fmt.Errorf("scan assignment details: %w", err)
		}
		d.Cycle = calendar.CycleKey(cycle)
		res = append(res, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignment details: %w", err)
	}
	return res, nil
}

// GetAssignment returns an assignment by id.
func (p *Postgres) GetAssignment(ctx context.Context, assignmentID string) (*entities.Assignment, error) {
	a, err := scanAssignment(p.db.QueryRow(ctx, selectAssignmentQuery, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAssignmentNotFound
		}
		p.log.Errorw("failed to get assignment", "error", err, "assignment_id", assignmentID)
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// InsertAssignments writes the whole batch in one transaction.
func (p *Postgres) InsertAssignments(ctx context.Context, batch []entities.Assignment) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, a := range batch {
		if _, err := tx.Exec(ctx, insertAssignmentQuery,
			a.ID, a.MemberID, a.ChoreID, string(a.Cycle), a.Completed, a.Late, nonNil(a.SubtasksCompleted),
		); err != nil {
			p.log.Errorw("failed to insert assignment", "error", err, "chore_id", a.ChoreID, "cycle", a.Cycle)
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case uniqueViolation:
					return fmt.Errorf("%w: chore %s in %s", entities.ErrCycleAlreadyRotated, a.ChoreID, a.Cycle)
				case foreignKeyViolation:
					return fmt.Errorf("%w: %s", entities.ErrChoreNotFound, a.ChoreID)
				}
			}
			return fmt.Errorf("insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit assignments: %w", err)
	}

	p.log.Infow("assignments inserted", "count", len(batch), "cycle", batch[0].Cycle)
	return nil
}

// UpdateAssignmentProgress stores the completed sub-tasks and completion flag.
func (p *Postgres) UpdateAssignmentProgress(ctx context.Context, assignmentID string, subtasks []string, completed bool) (*entities.Assignment, error) {
	a, err := scanAssignment(p.db.QueryRow(ctx, updateProgressQuery, assignmentID, nonNil(subtasks), completed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAssignmentNotFound
		}
		p.log.Errorw("failed to update assignment progress", "error", err, "assignment_id", assignmentID)
		return nil, fmt.Errorf("update assignment progress: %w", err)
	}
	return &a, nil
}

// MarkLate flags the cycle's incomplete and unflagged assignments.
func (p *Postgres) MarkLate(ctx context.Context, cycle calendar.CycleKey) (int64, error) {
	tag, err := p.db.Exec(ctx, markLateQuery, string(cycle))
	if err != nil {
		p.log.Errorw("failed to mark late", "error", err, "cycle", cycle)
		return 0, fmt.Errorf("mark late: %w", err)
	}
	p.log.Infow("late assignments marked", "cycle", cycle, "count", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func scanAssignment(row scanner) (entities.Assignment, error) {
	var a entities.Assignment
	var cycle string
	if err := row.Scan(&a.ID, &a.MemberID, &a.ChoreID, &cycle, &a.Completed, &a.Late, &a.SubtasksCompleted); err != nil {
		return a, err
	}
	a.Cycle = calendar.CycleKey(cycle)
	return a, nil
}

func buildAssignmentFilter(filter entities.AssignmentFilter) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	idx := 1
	if filter.Cycle != "" {
		conditions = append(conditions, "a.week_start_date = $"+strconv.Itoa(idx)+"::date")
		args = append(args, string(filter.Cycle))
		idx++
	}
	if filter.MemberID != "" {
		conditions = append(conditions, "a.member_id = $"+strconv.Itoa(idx))
		args = append(args, filter.MemberID)
		idx++
	}
	if filter.ExcludeMember != "" {
		conditions = append(conditions, "a.member_id <> $"+strconv.Itoa(idx))
		args = append(args, filter.ExcludeMember)
		idx++
	}
	if filter.Completed != nil {
		conditions = append(conditions, "a.completed = $"+strconv.Itoa(idx))
		args = append(args, *filter.Completed)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
