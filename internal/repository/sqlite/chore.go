package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chore-app/internal/entities"
)

const (
	listChoresQuery  = `SELECT id, name, subtasks FROM chores ORDER BY name, id`
	getChoreQuery    = `SELECT id, name, subtasks FROM chores WHERE id=?`
	upsertChoreQuery = `
INSERT INTO chores(id, name, subtasks)
VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET name = excluded.name, subtasks = excluded.subtasks
RETURNING id, name, subtasks
`
)

// ListChores returns the chore catalog.
func (s *SQLite) ListChores(ctx context.Context) ([]entities.Chore, error) {
	rows, err := s.db.QueryContext(ctx, listChoresQuery)
	if err != nil {
		s.log.Errorw("failed to list chores", "error", err)
		return nil, fmt.Errorf("list chores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	chores := make([]entities.Chore, 0)
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chore: %w", err)
		}
		chores = append(chores, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chores: %w", err)
	}
	return chores, nil
}

// GetChore returns a chore by id.
func (s *SQLite) GetChore(ctx context.Context, choreID string) (*entities.Chore, error) {
	c, err := scanChore(s.db.QueryRowContext(ctx, getChoreQuery, choreID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrChoreNotFound
		}
		s.log.Errorw("failed to get chore", "error", err, "chore_id", choreID)
		return nil, fmt.Errorf("get chore: %w", err)
	}
	return &c, nil
}

// UpsertChore inserts a chore or replaces its name and sub-tasks.
func (s *SQLite) UpsertChore(ctx context.Context, c entities.Chore) (*entities.Chore, error) {
	subtasks, err := encodeList(c.Subtasks)
	if err != nil {
		return nil, err
	}
	res, err := scanChore(s.db.QueryRowContext(ctx, upsertChoreQuery, c.ID, c.Name, subtasks))
	if err != nil {
		s.log.Errorw("failed to upsert chore", "error", err, "chore_id", c.ID)
		return nil, fmt.Errorf("upsert chore: %w", err)
	}
	s.log.Infow("chore upserted", "chore_id", res.ID, "subtasks", len(res.Subtasks))
	return &res, nil
}

func scanChore(row scanner) (entities.Chore, error) {
	var c entities.Chore
	var raw string
	if err := row.Scan(&c.ID, &c.Name, &raw); err != nil {
		return c, err
	}
	list, err := decodeList(raw)
	if err != nil {
		return c, err
	}
	c.Subtasks = list
	return c, nil
}
