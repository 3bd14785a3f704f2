// Package entities contains core business entities.
package entities

// MemberStats aggregates a member's assignment and rating history.
type MemberStats struct {
	MemberID        string  `json:"member_id"`
	Assigned        int64   `json:"assigned"`
	Completed       int64   `json:"completed"`
	LateFlagged     int64   `json:"late_flagged"`
	LateOpen        int64   `json:"late_open"`
	RatingsReceived int64   `json:"ratings_received"`
	AverageScore    float64 `json:"average_score"`
}
