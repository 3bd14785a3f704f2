package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

const (
	selectRatingTupleQuery = `
SELECT id FROM ratings
WHERE rater_id = ? AND ratee_id = ? AND chore_id = ? AND week_start_date = ?
`
	insertRatingQuery = `
INSERT INTO ratings(id, rater_id, ratee_id, chore_id, week_start_date, rating)
VALUES (?, ?, ?, ?, ?, ?)
`
	updateRatingQuery = `UPDATE ratings SET rating = ? WHERE id = ?`
	selectRatingQuery = `SELECT id, rater_id, ratee_id, chore_id, week_start_date, rating FROM ratings WHERE id = ?`
	listRatingsQuery  = `
SELECT id, rater_id, ratee_id, chore_id, week_start_date, rating
FROM ratings
WHERE rater_id = ? AND week_start_date = ?
ORDER BY ratee_id, chore_id
`
)

// UpsertRating inserts the rating or overwrites the score of the existing tuple.
func (s *SQLite) UpsertRating(ctx context.Context, r entities.Rating) (*entities.Rating, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = tx.Rollback() }()

	var existingID string
	err = tx.QueryRowContext(ctx, selectRatingTupleQuery, r.RaterID, r.RateeID, r.ChoreID, string(r.Cycle)).Scan(&existingID)
	created := errors.Is(err, sql.ErrNoRows)
	if err != nil && !created {
		s.log.Errorw("failed to look up rating", "error", err, "rater_id", r.RaterID, "ratee_id", r.RateeID)
		return nil, false, fmt.Errorf("lookup rating: %w", err)
	}

	id := existingID
	if created {
		id = r.ID
		_, err = tx.ExecContext(ctx, insertRatingQuery, r.ID, r.RaterID, r.RateeID, r.ChoreID, string(r.Cycle), r.Score)
	} else {
		_, err = tx.ExecContext(ctx, updateRatingQuery, r.Score, existingID)
	}
	if err != nil {
		s.log.Errorw("failed to store rating", "error", err, "rater_id", r.RaterID, "ratee_id", r.RateeID, "chore_id", r.ChoreID)
		switch {
		case isForeignKeyViolation(err):
			return nil, false, fmt.Errorf("%w: %s", entities.ErrChoreNotFound, r.ChoreID)
		case isCheckViolation(err):
			return nil, false, fmt.Errorf("%w: rating constraint", entities.ErrInvalidArgument)
		}
		return nil, false, fmt.Errorf("store rating: %w", err)
	}

	res, err := scanRating(tx.QueryRowContext(ctx, selectRatingQuery, id))
	if err != nil {
		return nil, false, fmt.Errorf("reload rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit rating: %w", err)
	}

	s.log.Infow("rating stored", "rating_id", res.ID, "created", created, "cycle", res.Cycle)
	return &res, created, nil
}

// ListRatings returns the ratings a member gave for a cycle.
func (s *SQLite) ListRatings(ctx context.Context, raterID string, cycle calendar.CycleKey) ([]entities.Rating, error) {
	rows, err := s.db.QueryContext(ctx, listRatingsQuery, raterID, string(cycle))
	if err != nil {
		s.log.Errorw("failed to list ratings", "error", err, "rater_id", raterID, "cycle", cycle)
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	res := make([]entities.Rating, 0)
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return res, nil
}

func scanRating(row scanner) (entities.Rating, error) {
	var r entities.Rating
	var cycle string
	if err := row.Scan(&r.ID, &r.RaterID, &r.RateeID, &r.ChoreID, &cycle, &r.Score); err != nil {
		return r, err
	}
	r.Cycle = calendar.CycleKey(cycle)
	return r, nil
}
