package domain

import (
	"context"
	"fmt"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

// CycleBoard returns the current cycle's assignments. With mine set only the
// acting member's assignments are listed.
func (u *Usecase) CycleBoard(ctx context.Context, session entities.Session, mine bool) (entities.CycleBoard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	now := u.clock()
	board := entities.CycleBoard{
		Cycle:    calendar.CycleStart(now),
		CycleEnd: calendar.CycleEnd(now),
	}

	filter := entities.AssignmentFilter{Cycle: board.Cycle}
	if mine {
		if session.Anonymous() {
			return board, fmt.Errorf("%w: member identity required", entities.ErrInvalidArgument)
		}
		filter.MemberID = session.MemberID
	}

	list, err := u.repo.ListAssignmentDetails(ctx, filter)
	if err != nil {
		return board, err
	}

	board.Assignments = list
	board.Total = len(list)
	for _, d := range list {
		if d.Completed {
			board.Completed++
		}
		if d.MemberID == session.MemberID && d.IsLate() {
			board.LateWarning = true
		}
	}
	return board, nil
}

// ListMembers returns the roster in rotation order.
func (u *Usecase) ListMembers(ctx context.Context) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListMembers(ctx)
}

// ListChores returns the chore catalog.
func (u *Usecase) ListChores(ctx context.Context) ([]entities.Chore, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListChores(ctx)
}

// Calendar describes the cycle containing now.
func (u *Usecase) Calendar() entities.CycleInfo {
	return entities.DescribeCycle(u.clock())
}

// MemberStats returns the assignment and rating history of a member.
func (u *Usecase) MemberStats(ctx context.Context, memberID string) (entities.MemberStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if memberID == "" {
		return entities.MemberStats{}, fmt.Errorf("%w: member id required", entities.ErrInvalidArgument)
	}
	return u.repo.MemberStats(ctx, memberID)
}
