// Package entities contains core business entities.
package entities

import "chore-app/internal/calendar"

const (
	// MinScore is the lowest rating score.
	MinScore = 1
	// MaxScore is the highest rating score.
	MaxScore = 5
)

// Rating is a peer quality score for one member's chore in one cycle.
type Rating struct {
	ID      string
	RaterID string
	RateeID string
	ChoreID string
	Cycle   calendar.CycleKey
	Score   int
}

// Matches reports whether the rating evaluates the given assignment.
func (r Rating) Matches(a Assignment) bool {
	return r.RateeID == a.MemberID && r.ChoreID == a.ChoreID && r.Cycle == a.Cycle
}

// QualityCheck is the rating view of the previous cycle for one rater.
type QualityCheck struct {
	Cycle       calendar.CycleKey
	Available   bool
	Assignments []AssignmentDetails
	Ratings     []Rating
	Rated       int
	Total       int
	Average     float64
}
