package postgres

import (
	"context"
	"errors"
	"fmt"

	"chore-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listChoresQuery  = `SELECT id, name, subtasks FROM chores ORDER BY name, id`
	getChoreQuery    = `SELECT id, name, subtasks FROM chores WHERE id=$1`
	upsertChoreQuery = `
INSERT INTO chores(id, name, subtasks)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, subtasks = EXCLUDED.subtasks
RETURNING id, name, subtasks
`
)

// ListChores returns the chore catalog.
func (p *Postgres) ListChores(ctx context.Context) ([]entities.Chore, error) {
	rows, err := p.db.Query(ctx, listChoresQuery)
	if err != nil {
		p.log.Errorw("failed to list chores", "error", err)
		return nil, fmt.Errorf("list chores: %w", err)
	}
	defer rows.Close()

	chores := make([]entities.Chore, 0)
	for rows.Next() {
		var c entities.Chore
		if err := rows.Scan(&c.ID, &c.Name, &c.Subtasks); err != nil {
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
func (p *Postgres) GetChore(ctx context.Context, choreID string) (*entities.Chore, error) {
	var c entities.Chore
	if err := p.db.QueryRow(ctx, getChoreQuery, choreID).Scan(&c.ID, &c.Name, &c.Subtasks); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrChoreNotFound
		}
		p.log.Errorw("failed to get chore", "error", err, "chore_id", choreID)
		return nil, fmt.Errorf("get chore: %w", err)
	}
	return &c, nil
}

// UpsertChore inserts a chore or replaces its name and sub-tasks.
func (p *Postgres) UpsertChore(ctx context.Context, c entities.Chore) (*entities.Chore, error) {
	var res entities.Chore
	if err := p.db.QueryRow(ctx, upsertChoreQuery, c.ID, c.Name, nonNil(c.Subtasks)).
		Scan(&res.ID, &res.Name, &res.Subtasks); err != nil {
		p.log.Errorw("failed to upsert chore", "error", err, "chore_id", c.ID)
		return nil, fmt.Errorf("upsert chore: %w", err)
	}
	p.log.Infow("chore upserted", "chore_id", res.ID, "subtasks", len(res.Subtasks))
	return &res, nil
}
