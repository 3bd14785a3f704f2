// Package entities contains core business entities.
package entities

import "chore-app/internal/calendar"

// Assignment binds a chore to a member for one cycle.
type Assignment struct {
	ID                string
	MemberID          string
	ChoreID           string
	Cycle             calendar.CycleKey
	Completed         bool
	Late              bool
	SubtasksCompleted []string
}

// IsLate reports display lateness: the stored late flag only counts while the
// assignment is still incomplete. The stored flag itself is never cleared.
func (a Assignment) IsLate() bool {
	return !a.Completed && a.Late
}

// AssignmentDetails is the read model of an assignment with its member and
// chore resolved.
type AssignmentDetails struct {
	Assignment
	Member Member
	Chore  Chore
}

// AssignmentFilter narrows assignment listings. Zero values do not filter.
type AssignmentFilter struct {
	Cycle         calendar.CycleKey
	MemberID      string
	ExcludeMember string
	Completed     *bool
}

// RotationSkip records a chore left out of a rotation and why.
type RotationSkip struct {
	ChoreID  string
	MemberID string
	Reason   string
}

const (
	// SkipNoCurrentAssignment marks a chore without an assignment in the current cycle.
	SkipNoCurrentAssignment = "no current assignment"
	// SkipMemberNotInRoster marks a chore whose current member left the roster.
	SkipMemberNotInRoster = "member not in roster"
)

// RotationResult is the outcome of one rotation.
type RotationResult struct {
	Cycle   calendar.CycleKey
	Created []Assignment
	Skipped []RotationSkip
}

// CycleBoard is the current-cycle overview shown to a member.
type CycleBoard struct {
	Cycle       calendar.CycleKey
	CycleEnd    calendar.CycleKey
	Assignments []AssignmentDetails
	Completed   int
	Total       int
	LateWarning bool
}
