package postgres

import (
	"context"
	"errors"
	"fmt"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	upsertRatingQuery = `
INSERT INTO ratings(id, rater_id, ratee_id, chore_id, week_start_date, rating)
VALUES ($1, $2, $3, $4, $5::date, $6)
ON CONFLICT (rater_id, ratee_id, chore_id, week_start_date)
DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
RETURNING id, rater_id, ratee_id, chore_id, week_start_date::text, rating, (xmax = 0) AS inserted
`
	listRatingsQuery = `
SELECT id, rater_id, ratee_id, chore_id, week_start_date::text, rating
FROM ratings
WHERE rater_id = $1 AND week_start_date = $2::date
ORDER BY ratee_id, chore_id
`
)

// UpsertRating inserts the rating or overwrites the score of the existing tuple.
func (p *Postgres) UpsertRating(ctx context.Context, r entities.Rating) (*entities.Rating, bool, error) {
	var res entities.Rating
	var cycle string
	var created bool
	err := p.db.QueryRow(ctx, upsertRatingQuery, r.ID, r.RaterID, r.RateeID, r.ChoreID, string(r.Cycle), r.Score).
		Scan(&res.ID, &res.RaterID, &res.RateeID, &res.ChoreID, &cycle, &res.Score, &created)
	if err != nil {
		p.log.Errorw("failed to upsert rating", "error", err, "rater_id", r.RaterID, "ratee_id", r.RateeID, "chore_id", r.ChoreID)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case foreignKeyViolation:
				return nil, false, fmt.Errorf("%w: %s", entities.ErrChoreNotFound, r.ChoreID)
			case checkViolation:
				return nil, false, fmt.Errorf("%w: %s", entities.ErrInvalidArgument, pgErr.ConstraintName)
			}
		}
		return nil, false, fmt.Errorf("upsert rating: %w", err)
	}
	res.Cycle = calendar.CycleKey(cycle)

	p.log.Infow("rating stored", "rating_id", res.ID, "created", created, "cycle", res.Cycle)
	return &res, created, nil
}

// ListRatings returns the ratings a member gave for a cycle.
func (p *Postgres) ListRatings(ctx context.Context, raterID string, cycle calendar.CycleKey) ([]entities.Rating, error) {
	rows, err := p.db.Query(ctx, listRatingsQuery, raterID, string(cycle))
	if err != nil {
		p.log.Errorw("failed to list ratings", "error", err, "rater_id", raterID, "cycle", cycle)
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Rating, 0)
	for rows.Next() {
		var r entities.Rating
		var c string
		if err := rows.Scan(&r.ID, &r.RaterID, &r.RateeID, &r.ChoreID, &c, &r.Score); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		r.Cycle = calendar.CycleKey(c)
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return res, nil
}
