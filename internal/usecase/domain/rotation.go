// Package domain contains application services orchestrating domain logic by chore cycle.
package domain

import (
	"context"
	"fmt"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

// Rotate plans the next cycle: every chore with a current assignment moves to
// the member after its current one in roster order, wrapping at the end.
// Chores without a current assignment and chores whose member left the roster
// are reported in Skipped instead of failing the rotation.
func Rotate(
	roster []entities.Member,
	catalog []entities.Chore,
	current []entities.Assignment,
	next calendar.CycleKey,
	newID func() string,
) (entities.RotationResult, error) {
	res := entities.RotationResult{Cycle: next}
	if len(roster) == 0 {
		return res, fmt.Errorf("%w: no members found", entities.ErrEmptyRoster)
	}
	if len(catalog) == 0 {
		return res, fmt.Errorf("%w: no chores found", entities.ErrEmptyCatalog)
	}

	position := make(map[string]int, len(roster))
	for i, m := range roster {
		position[m.ID] = i
	}

	assignee := make(map[string]string, len(current))
	for _, a := range current {
		assignee[a.ChoreID] = a.MemberID
	}

	for _, chore := range catalog {
		memberID, ok := assignee[chore.ID]
		if !ok {
			res.Skipped = append(res.Skipped, entities.RotationSkip{ChoreID: chore.ID, Reason: entities.SkipNoCurrentAssignment})
			continue
		}
		idx, ok := position[memberID]
		if !ok {
			res.Skipped = append(res.Skipped, entities.RotationSkip{ChoreID: chore.ID, MemberID: memberID, Reason: entities.SkipMemberNotInRoster})
			continue
		}

		nextMember := roster[(idx+1)%len(roster)]
		res.Created = append(res.Created, entities.Assignment{
			ID:                newID(),
			MemberID:          nextMember.ID,
			ChoreID:           chore.ID,
			Cycle:             next,
			Completed:         false,
			Late:              false,
			SubtasksCompleted: []string{},
		})
	}

	return res, nil
}

// RotateChores advances every chore of the current cycle to the next member
// and persists the next cycle as a single batch.
func (u *Usecase) RotateChores(ctx context.Context) (res entities.RotationResult, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	now := u.clock()
	current := calendar.CycleStart(now)
	next := calendar.NextCycleStart(now)
	defer func() {
		u.metrics.Rotation(err, len(res.Created), skipReasons(res.Skipped))
	}()

	if !calendar.IsRotationDay(now) {
		u.log.Warnw("rotation triggered outside rotation day", "now", now, "rotation_day", calendar.RotationDay.String())
	}

	roster, err := u.repo.ListMembers(ctx)
	if err != nil {
		return entities.RotationResult{Cycle: next}, fmt.Errorf("load roster: %w", err)
	}
	catalog, err := u.repo.ListChores(ctx)
	if err != nil {
		return entities.RotationResult{Cycle: next}, fmt.Errorf("load chores: %w", err)
	}
	if len(roster) == 0 || len(catalog) == 0 {
		res, err = Rotate(roster, catalog, nil, next, u.newID)
		u.log.Errorw("rotation rejected", "error", err, "members", len(roster), "chores", len(catalog))
		return res, err
	}

	assignments, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{Cycle: current})
	if err != nil {
		return entities.RotationResult{Cycle: next}, fmt.Errorf("load current assignments: %w", err)
	}

	res, err = Rotate(roster, catalog, assignments, next, u.newID)
	if err != nil {
		return res, err
	}
	for _, s := range res.Skipped {
		u.log.Warnw("chore skipped in rotation", "chore_id", s.ChoreID, "member_id", s.MemberID, "reason", s.Reason, "cycle", current)
	}

	if len(res.Created) == 0 {
		u.log.Warnw("rotation produced no assignments", "cycle", current, "next_cycle", next, "skipped", len(res.Skipped))
		return res, nil
	}

	if err := u.repo.InsertAssignments(ctx, res.Created); err != nil {
		u.log.Errorw("rotation batch failed, next cycle has no new assignments",
			"error", err, "next_cycle", next, "planned", len(res.Created))
		failed := entities.RotationResult{Cycle: next, Skipped: res.Skipped}
		return failed, fmt.Errorf("persist rotation: %w", err)
	}

	u.log.Infow("chores rotated", "cycle", current, "next_cycle", next, "created", len(res.Created), "skipped", len(res.Skipped))
	return res, nil
}

func skipReasons(skips []entities.RotationSkip) []string {
	reasons := make([]string, 0, len(skips))
	for _, s := range skips {
		reasons = append(reasons, s.Reason)
	}
	return reasons
}
