package domain

import (
	"context"
	"fmt"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

// SubmitRating records the rater's score for a completed assignment of the
// previous cycle. A second submission for the same tuple overwrites the score.
func (u *Usecase) SubmitRating(ctx context.Context, session entities.Session, assignmentID string, score int) (*entities.Rating, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if session.Anonymous() {
		return nil, fmt.Errorf("%w: member identity required", entities.ErrInvalidArgument)
	}
	if score < entities.MinScore || score > entities.MaxScore {
		return nil, fmt.Errorf("%w: %d not in %d..%d", entities.ErrInvalidScore, score, entities.MinScore, entities.MaxScore)
	}

	now := u.clock()
	if !calendar.IsQualityCheckDay(now) {
		return nil, fmt.Errorf("%w: ratings open on %s", entities.ErrNotQualityCheckDay, calendar.QualityCheckDay)
	}

	a, err := u.repo.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if a.MemberID == session.MemberID {
		return nil, entities.ErrSelfRating
	}

	rated := calendar.PreviousCycleStart(now)
	if a.Cycle != rated || !a.Completed {
		return nil, fmt.Errorf("%w: assignment %s of cycle %s", entities.ErrRatingClosed, a.ID, a.Cycle)
	}

	rating, created, err := u.repo.UpsertRating(ctx, entities.Rating{
		ID:      u.newID(),
		RaterID: session.MemberID,
		RateeID: a.MemberID,
		ChoreID: a.ChoreID,
		Cycle:   rated,
		Score:   score,
	})
	if err != nil {
		u.log.Errorw("failed to store rating", "error", err, "assignment_id", assignmentID, "rater_id", session.MemberID)
		return nil, err
	}

	u.metrics.Rating(created)
	u.log.Infow("rating stored",
		"rating_id", rating.ID,
		"rater_id", rating.RaterID,
		"ratee_id", rating.RateeID,
		"chore_id", rating.ChoreID,
		"cycle", rating.Cycle,
		"score", rating.Score,
		"created", created,
	)
	return rating, nil
}

// QualityCheck returns the previous cycle's completed assignments of other
// members together with the rater's own scores for them.
func (u *Usecase) QualityCheck(ctx context.Context, session entities.Session) (entities.QualityCheck, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	now := u.clock()
	res := entities.QualityCheck{
		Cycle:     calendar.PreviousCycleStart(now),
		Available: calendar.IsQualityCheckDay(now),
	}
	if session.Anonymous() {
		return res, fmt.Errorf("%w: member identity required", entities.ErrInvalidArgument)
	}

	completed := true
	eligible, err := u.repo.ListAssignmentDetails(ctx, entities.AssignmentFilter{
		Cycle:         res.Cycle,
		ExcludeMember: session.MemberID,
		Completed:     &completed,
	})
	if err != nil {
		return res, err
	}
	ratings, err := u.repo.ListRatings(ctx, session.MemberID, res.Cycle)
	if err != nil {
		return res, err
	}

	res.Assignments = eligible
	res.Total = len(eligible)
	res.Ratings = make([]entities.Rating, 0, len(ratings))

	sum := 0
	for _, d := range eligible {
		for _, r := range ratings {
			if r.Matches(d.Assignment) {
				res.Ratings = append(res.Ratings, r)
				sum += r.Score
				break
			}
		}
	}
	res.Rated = len(res.Ratings)
	if res.Rated > 0 {
		res.Average = float64(sum) / float64(res.Rated)
	}
	return res, nil
}
