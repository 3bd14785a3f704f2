package usecase

import (
	"context"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
)

// RotationUsecaseInterface abstracts the weekly trigger operations.
type RotationUsecaseInterface interface {
	RotateChores(ctx context.Context) (entities.RotationResult, error)
	MarkLate(ctx context.Context, cycle calendar.CycleKey) (calendar.CycleKey, int64, error)
}

// ProgressUsecaseInterface abstracts sub-task updates of an assignment.
type ProgressUsecaseInterface interface {
	ToggleSubtask(ctx context.Context, session entities.Session, assignmentID, label string) (*entities.Assignment, error)
	CompleteAll(ctx context.Context, session entities.Session, assignmentID string) (*entities.Assignment, error)
	ResetAll(ctx context.Context, session entities.Session, assignmentID string) (*entities.Assignment, error)
}

// RatingUsecaseInterface abstracts quality-check operations.
type RatingUsecaseInterface interface {
	SubmitRating(ctx context.Context, session entities.Session, assignmentID string, score int) (*entities.Rating, error)
	QualityCheck(ctx context.Context, session entities.Session) (entities.QualityCheck, error)
}

// BoardUsecaseInterface abstracts read views of the household.
type BoardUsecaseInterface interface {
	CycleBoard(ctx context.Context, session entities.Session, mine bool) (entities.CycleBoard, error)
	ListMembers(ctx context.Context) ([]entities.Member, error)
	ListChores(ctx context.Context) ([]entities.Chore, error)
	Calendar() entities.CycleInfo
	MemberStats(ctx context.Context, memberID string) (entities.MemberStats, error)
}

// ProvisionUsecaseInterface abstracts household setup.
type ProvisionUsecaseInterface interface {
	Provision(ctx context.Context, h entities.Household) (entities.ProvisionResult, error)
}
