package domain

import (
	"context"
	"fmt"

	"chore-app/internal/entities"
)

const (
	progressToggle   = "toggle"
	progressComplete = "complete"
	progressReset    = "reset"
)

// ToggleSubtask flips label in the assignment's completed set and recomputes
// the completion flag. The returned set follows the chore's sub-task order.
func ToggleSubtask(a entities.Assignment, chore entities.Chore, label string) (entities.Assignment, error) {
	if !chore.HasSubtask(label) {
		return a, fmt.Errorf("%w: %q is not a sub-task of %s", entities.ErrUnknownSubtask, label, chore.Name)
	}

	done := make(map[string]bool, len(a.SubtasksCompleted)+1)
	for _, s := range a.SubtasksCompleted {
		done[s] = true
	}
	done[label] = !done[label]

	a.SubtasksCompleted = make([]string, 0, len(chore.Subtasks))
	for _, s := range chore.Subtasks {
		if done[s] {
			a.SubtasksCompleted = append(a.SubtasksCompleted, s)
		}
	}
	a.Completed = len(a.SubtasksCompleted) == len(chore.Subtasks)
	return a, nil
}

// CompleteAll marks every sub-task of the chore done.
func CompleteAll(a entities.Assignment, chore entities.Chore) entities.Assignment {
	a.SubtasksCompleted = append(make([]string, 0, len(chore.Subtasks)), chore.Subtasks...)
	a.Completed = true
	return a
}

// ResetAll clears the completed set.
func ResetAll(a entities.Assignment) entities.Assignment {
	a.SubtasksCompleted = []string{}
	a.Completed = false
	return a
}

// ToggleSubtask flips one sub-task of an assignment and returns the persisted row.
func (u *Usecase) ToggleSubtask(ctx context.Context, session entities.Session, assignmentID, label string) (*entities.Assignment, error) {
	return u.updateProgress(ctx, session, assignmentID, progressToggle, func(a entities.Assignment, c entities.Chore) (entities.Assignment, error) {
		return ToggleSubtask(a, c, label)
	})
}

// CompleteAll completes every sub-task of an assignment.
func (u *Usecase) CompleteAll(ctx context.Context, session entities.Session, assignmentID string) (*entities.Assignment, error) {
	return u.updateProgress(ctx, session, assignmentID, progressComplete, func(a entities.Assignment, c entities.Chore) (entities.Assignment, error) {
		return CompleteAll(a, c), nil
	})
}

// ResetAll clears every sub-task of an assignment.
func (u *Usecase) ResetAll(ctx context.Context, session entities.Session, assignmentID string) (*entities.Assignment, error) {
	return u.updateProgress(ctx, session, assignmentID, progressReset, func(a entities.Assignment, _ entities.Chore) (entities.Assignment, error) {
		return ResetAll(a), nil
	})
}

func (u *Usecase) updateProgress(
	ctx context.Context,
	session entities.Session,
	assignmentID, kind string,
	apply func(entities.Assignment, entities.Chore) (entities.Assignment, error),
) (*entities.Assignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if session.Anonymous() {
		return nil, fmt.Errorf("%w: member identity required", entities.ErrInvalidArgument)
	}
	if assignmentID == "" {
		return nil, fmt.Errorf("%w: assignment id required", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	chore, err := u.repo.GetChore(ctx, current.ChoreID)
	if err != nil {
		return nil, err
	}

	next, err := apply(*current, *chore)
	if err != nil {
		return nil, err
	}

	saved, err := u.repo.UpdateAssignmentProgress(ctx, assignmentID, next.SubtasksCompleted, next.Completed)
	if err != nil {
		u.log.Errorw("failed to persist progress", "error", err, "assignment_id", assignmentID, "kind", kind)
		return nil, err
	}

	u.metrics.Progress(kind)
	u.log.Infow("assignment progress updated",
		"assignment_id", assignmentID,
		"member_id", session.MemberID,
		"kind", kind,
		"completed", saved.Completed,
		"subtasks", len(saved.SubtasksCompleted),
	)
	return saved, nil
}
