package domain

import (
	"context"
	"time"

	"chore-app/internal/metrics"
	"chore-app/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	now     func() time.Time
	loc     *time.Location
	metrics *metrics.Metrics
	newID   func() string
}

// Option customises a Usecase.
type Option func(*Usecase)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// WithLocation sets the time zone cycle boundaries are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(u *Usecase) { u.loc = loc }
}

// WithMetrics attaches prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *Usecase) { u.metrics = m }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(newID func() string) Option {
	return func(u *Usecase) { u.newID = newID }
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
		loc:     time.UTC,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// clock returns the current instant in the household time zone.
func (u *Usecase) clock() time.Time {
	return u.now().In(u.loc)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
