// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// MemberInterface exposes roster operations.
type MemberInterface interface {
	// ListMembers returns the roster in rotation order.
	ListMembers(ctx context.Context) ([]entities.Member, error)
	UpsertMember(ctx context.Context, m entities.Member) (*entities.Member, error)
}

// ChoreInterface exposes chore catalog operations.
type ChoreInterface interface {
	ListChores(ctx context.Context) ([]entities.Chore, error)
	GetChore(ctx context.Context, choreID string) (*entities.Chore, error)
	UpsertChore(ctx context.Context, c entities.Chore) (*entities.Chore, error)
}

// AssignmentInterface exposes assignment operations.
type AssignmentInterface interface {
	ListAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error)
	ListAssignmentDetails(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentDetails, error)
	GetAssignment(ctx context.Context, assignmentID string) (*entities.Assignment, error)
	// InsertAssignments writes the batch in one transaction or not at all.
	InsertAssignments(ctx context.Context, batch []entities.Assignment) error
	UpdateAssignmentProgress(ctx context.Context, assignmentID string, subtasks []string, completed bool) (*entities.Assignment, error)
	// MarkLate flags incomplete, unflagged assignments of the cycle and returns how many changed.
	MarkLate(ctx context.Context, cycle calendar.CycleKey) (int64, error)
}

// RatingInterface exposes rating operations.
type RatingInterface interface {
	// UpsertRating inserts the rating or overwrites the score of the existing
	// row for the same rater, ratee, chore and cycle. created is false on overwrite.
	UpsertRating(ctx context.Context, r entities.Rating) (res *entities.Rating, created bool, err error)
	ListRatings(ctx context.Context, raterID string, cycle calendar.CycleKey) ([]entities.Rating, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	MemberStats(ctx context.Context, memberID string) (entities.MemberStats, error)
}
