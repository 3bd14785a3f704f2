// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"chore-app/config"
	"chore-app/internal/repository/postgres"
	"chore-app/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	MemberInterface
	ChoreInterface
	AssignmentInterface
	RatingInterface
	StatsInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendSQLite:
		return sqlite.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
