package usecase

import (
	"context"
	"time"

	"chore-app/internal/repository"
	"chore-app/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RotationUsecaseInterface
	ProgressUsecaseInterface
	RatingUsecaseInterface
	BoardUsecaseInterface
	ProvisionUsecaseInterface
}

var _ InterfaceUsecase = (*domain.Usecase)(nil)

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	opts ...domain.Option,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, opts...)
}
