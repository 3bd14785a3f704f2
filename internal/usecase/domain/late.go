package domain

import (
	"context"
	"fmt"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

// MarkLate flags every incomplete, unflagged assignment of the cycle. An
// empty cycle means the cycle containing now; other keys are normalized to
// their cycle start. Returns the cycle acted on and the number newly flagged.
func (u *Usecase) MarkLate(ctx context.Context, cycle calendar.CycleKey) (calendar.CycleKey, int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if cycle == "" {
		cycle = calendar.CycleStart(u.clock())
	} else {
		normalized, err := calendar.ParseCycleKey(string(cycle))
		if err != nil {
			return cycle, 0, fmt.Errorf("%w: cycle %q", entities.ErrInvalidArgument, cycle)
		}
		cycle = normalized.Normalize()
	}

	n, err := u.repo.MarkLate(ctx, cycle)
	if err != nil {
		u.log.Errorw("mark late failed", "error", err, "cycle", cycle)
		return cycle, 0, fmt.Errorf("mark late: %w", err)
	}

	u.metrics.LateMarked(n)
	u.log.Infow("late assignments flagged", "cycle", cycle, "count", n)
	return cycle, n, nil
}
