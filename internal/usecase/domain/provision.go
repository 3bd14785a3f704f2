package domain

import (
	"context"
	"fmt"
	"sort"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

// Provision upserts the household roster and catalog, then creates the first
// assignment of every listed chore that has none in the current cycle.
// Existing current-cycle assignments are kept untouched.
func (u *Usecase) Provision(ctx context.Context, h entities.Household) (entities.ProvisionResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var res entities.ProvisionResult
	for _, m := range h.Members {
		if m.ID == "" || m.Name == "" {
			return res, fmt.Errorf("%w: member id and name required", entities.ErrInvalidArgument)
		}
		if _, err := u.repo.UpsertMember(ctx, m); err != nil {
			return res, fmt.Errorf("upsert member %s: %w", m.ID, err)
		}
		res.Members++
	}
	for _, c := range h.Chores {
		if c.ID == "" || c.Name == "" {
			return res, fmt.Errorf("%w: chore id and name required", entities.ErrInvalidArgument)
		}
		if _, err := u.repo.UpsertChore(ctx, c); err != nil {
			return res, fmt.Errorf("upsert chore %s: %w", c.ID, err)
		}
		res.Chores++
	}
	if len(h.Initial) == 0 {
		u.log.Infow("household provisioned", "members", res.Members, "chores", res.Chores)
		return res, nil
	}

	roster, err := u.repo.ListMembers(ctx)
	if err != nil {
		return res, err
	}
	known := make(map[string]bool, len(roster))
	for _, m := range roster {
		known[m.ID] = true
	}

	cycle := calendar.CycleStart(u.clock())
	current, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{Cycle: cycle})
	if err != nil {
		return res, err
	}
	assigned := make(map[string]bool, len(current))
	for _, a := range current {
		assigned[a.ChoreID] = true
	}

	choreIDs := make([]string, 0, len(h.Initial))
	for choreID := range h.Initial {
		choreIDs = append(choreIDs, choreID)
	}
	sort.Strings(choreIDs)

	batch := make([]entities.Assignment, 0, len(choreIDs))
	for _, choreID := range choreIDs {
		memberID := h.Initial[choreID]
		if !known[memberID] {
			return res, fmt.Errorf("%w: %s for chore %s", entities.ErrMemberNotFound, memberID, choreID)
		}
		if assigned[choreID] {
			res.Kept++
			continue
		}
		batch = append(batch, entities.Assignment{
			ID:                u.newID(),
			MemberID:          memberID,
			ChoreID:           choreID,
			Cycle:             cycle,
			SubtasksCompleted: []string{},
		})
	}

	if err := u.repo.InsertAssignments(ctx, batch); err != nil {
		u.log.Errorw("failed to create initial assignments", "error", err, "cycle", cycle, "planned", len(batch))
		return res, fmt.Errorf("initial assignments: %w", err)
	}
	res.Assigned = len(batch)

	u.log.Infow("household provisioned",
		"members", res.Members,
		"chores", res.Chores,
		"assigned", res.Assigned,
		"kept", res.Kept,
		"cycle", cycle,
	)
	return res, nil
}
