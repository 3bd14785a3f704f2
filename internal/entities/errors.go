// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyRoster signals a rotation attempt without members.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrEmptyCatalog signals a rotation attempt without chores.
	ErrEmptyCatalog = errors.New("chore catalog is empty")
	// ErrUnknownSubtask signals a sub-task label that is not part of the chore.
	ErrUnknownSubtask = errors.New("unknown subtask")
	// ErrSelfRating signals a member trying to rate their own work.
	ErrSelfRating = errors.New("self rating")
	// ErrNotQualityCheckDay signals a rating attempt outside the check day.
	ErrNotQualityCheckDay = errors.New("not quality check day")
	// ErrInvalidScore signals a rating outside the 1..5 scale.
	ErrInvalidScore = errors.New("invalid score")
	// ErrRatingClosed signals an assignment that is not eligible for rating.
	ErrRatingClosed = errors.New("assignment not open for rating")
	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrChoreNotFound is returned when a chore does not exist.
	ErrChoreNotFound = errors.New("chore not found")
	// ErrAssignmentNotFound is returned when an assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrCycleAlreadyRotated signals that the next cycle already holds an assignment for a rotated chore.
	ErrCycleAlreadyRotated = errors.New("cycle already rotated")
)

// IsValidation reports whether err is a policy or input rejection rather than
// an infrastructure failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidArgument,
		ErrEmptyRoster,
		ErrEmptyCatalog,
		ErrUnknownSubtask,
		ErrSelfRating,
		ErrNotQualityCheckDay,
		ErrInvalidScore,
		ErrRatingClosed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
