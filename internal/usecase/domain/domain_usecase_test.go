package domain

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
	"chore-app/internal/metrics"
	"chore-app/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListMembers(ctx context.Context) ([]entities.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Member), args.Error(1)
}

func (m *repoMock) UpsertMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *repoMock) ListChores(ctx context.Context) ([]entities.Chore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Chore), args.Error(1)
}

func (m *repoMock) GetChore(ctx context.Context, choreID string) (*entities.Chore, error) {
	args := m.Called(ctx, choreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Chore), args.Error(1)
}

func (m *repoMock) UpsertChore(ctx context.Context, c entities.Chore) (*entities.Chore, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Chore), args.Error(1)
}

func (m *repoMock) ListAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Assignment), args.Error(1)
}

func (m *repoMock) ListAssignmentDetails(ctx context.Context, filter entities.AssignmentFilter) ([]entities.AssignmentDetails, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.AssignmentDetails), args.Error(1)
}

func (m *repoMock) GetAssignment(ctx context.Context, assignmentID string) (*entities.Assignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Assignment), args.Error(1)
}

func (m *repoMock) InsertAssignments(ctx context.Context, batch []entities.Assignment) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *repoMock) UpdateAssignmentProgress(ctx context.Context, assignmentID string, subtasks []string, completed bool) (*entities.Assignment, error) {
	args := m.Called(ctx, assignmentID, subtasks, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Assignment), args.Error(1)
}

func (m *repoMock) MarkLate(ctx context.Context, cycle calendar.CycleKey) (int64, error) {
	args := m.Called(ctx, cycle)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) UpsertRating(ctx context.Context, r entities.Rating) (*entities.Rating, bool, error) {
	args := m.Called(ctx, r)
	var res *entities.Rating
	if args.Get(0) != nil {
		res = args.Get(0).(*entities.Rating)
	}
	return res, args.Bool(1), args.Error(2)
}

func (m *repoMock) ListRatings(ctx context.Context, raterID string, cycle calendar.CycleKey) ([]entities.Rating, error) {
	args := m.Called(ctx, raterID, cycle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Rating), args.Error(1)
}

func (m *repoMock) MemberStats(ctx context.Context, memberID string) (entities.MemberStats, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return entities.MemberStats{}, args.Error(1)
	}
	return args.Get(0).(entities.MemberStats), args.Error(1)
}

var (
	// Tuesday: rotation day, first day of cycle 2026-10-13.
	rotationDay = time.Date(2026, time.October, 13, 9, 0, 0, 0, time.UTC)
	// Wednesday of the same cycle.
	midWeek = time.Date(2026, time.October, 14, 18, 30, 0, 0, time.UTC)
	// Monday: quality-check day closing cycle 2026-10-13, rating cycle 2026-10-06.
	checkDay = time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC)
)

const (
	curCycle  = calendar.CycleKey("2026-10-13")
	nextCycle = calendar.CycleKey("2026-10-20")
	prevCycle = calendar.CycleKey("2026-10-06")
)

func newUsecase(repo *repoMock, now time.Time, opts ...Option) *Usecase {
	seq := 0
	base := []Option{
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string {
			seq++
			return "id-" + strconv.Itoa(seq)
		}),
	}
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second, append(base, opts...)...)
}

func roster(ids ...string) []entities.Member {
	res := make([]entities.Member, 0, len(ids))
	for i, id := range ids {
		res = append(res, entities.Member{ID: id, Name: id, Position: i})
	}
	return res
}

func TestUsecase_RotateChoresPersistsNextCycle(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, rotationDay, WithMetrics(metrics.New(prometheus.NewRegistry())))

	repo.On("ListMembers", mock.Anything).Return(roster("A", "B", "C"), nil)
	repo.On("ListChores", mock.Anything).Return([]entities.Chore{{ID: "laundry", Name: "Laundry"}, {ID: "trash", Name: "Trash"}}, nil)
	repo.On("ListAssignments", mock.Anything, entities.AssignmentFilter{Cycle: curCycle}).Return([]entities.Assignment{
		{ID: "a1", MemberID: "B", ChoreID: "laundry", Cycle: curCycle},
		{ID: "a2", MemberID: "gone", ChoreID: "trash", Cycle: curCycle},
	}, nil)
	repo.On("InsertAssignments", mock.Anything, []entities.Assignment{
		{ID: "id-1", MemberID: "C", ChoreID: "laundry", Cycle: nextCycle, SubtasksCompleted: []string{}},
	}).Return(nil)

	res, err := uc.RotateChores(context.Background())
	require.NoError(t, err)
	require.Equal(t, nextCycle, res.Cycle)
	require.Len(t, res.Created, 1)
	require.Equal(t, []entities.RotationSkip{{ChoreID: "trash", MemberID: "gone", Reason: entities.SkipMemberNotInRoster}}, res.Skipped)
	repo.AssertExpectations(t)
}

func TestUsecase_RotateChoresEmptyRosterOrCatalog(t *testing.T) {
	cases := []struct {
		name    string
		members []entities.Member
		chores  []entities.Chore
		want    error
	}{
		{name: "empty roster", members: []entities.Member{}, chores: []entities.Chore{{ID: "c"}}, want: entities.ErrEmptyRoster},
		{name: "empty catalog", members: roster("A"), chores: []entities.Chore{}, want: entities.ErrEmptyCatalog},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &repoMock{}
			uc := newUsecase(repo, rotationDay)
			repo.On("ListMembers", mock.Anything).Return(tc.members, nil)
			repo.On("ListChores", mock.Anything).Return(tc.chores, nil)

			res, err := uc.RotateChores(context.Background())
			require.ErrorIs(t, err, tc.want)
			require.True(t, entities.IsValidation(err))
			require.Empty(t, res.Created)
			repo.AssertNotCalled(t, "InsertAssignments", mock.Anything, mock.Anything)
		})
	}
}

func TestUsecase_RotateChoresBatchFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, rotationDay)

	repo.On("ListMembers", mock.Anything).Return(roster("A", "B"), nil)
	repo.On("ListChores", mock.Anything).Return([]entities.Chore{{ID: "c1"}, {ID: "c2"}}, nil)
	repo.On("ListAssignments", mock.Anything, mock.Anything).Return([]entities.Assignment{
		{MemberID: "A", ChoreID: "c1", Cycle: curCycle},
		{MemberID: "B", ChoreID: "c2", Cycle: curCycle},
	}, nil)
	repo.On("InsertAssignments", mock.Anything, mock.Anything).Return(entities.ErrCycleAlreadyRotated)

	res, err := uc.RotateChores(context.Background())
	require.ErrorIs(t, err, entities.ErrCycleAlreadyRotated)
	require.Empty(t, res.Created)
	require.False(t, entities.IsValidation(err))
}

func TestUsecase_RotateChoresNothingToRotate(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)

	repo.On("ListMembers", mock.Anything).Return(roster("A"), nil)
	repo.On("ListChores", mock.Anything).Return([]entities.Chore{{ID: "new-chore"}}, nil)
	repo.On("ListAssignments", mock.Anything, mock.Anything).Return([]entities.Assignment{}, nil)

	res, err := uc.RotateChores(context.Background())
	require.NoError(t, err)
	require.Empty(t, res.Created)
	require.Equal(t, entities.SkipNoCurrentAssignment, res.Skipped[0].Reason)
	repo.AssertNotCalled(t, "InsertAssignments", mock.Anything, mock.Anything)
}

func TestUsecase_RotateChoresStorageError(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, rotationDay)
	boom := errors.New("connection refused")

	repo.On("ListMembers", mock.Anything).Return(nil, boom)

	_, err := uc.RotateChores(context.Background())
	require.ErrorIs(t, err, boom)
	require.False(t, entities.IsValidation(err))
}

func TestUsecase_MarkLate(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)

	repo.On("MarkLate", mock.Anything, curCycle).Return(int64(3), nil).Once()
	repo.On("MarkLate", mock.Anything, prevCycle).Return(int64(0), nil).Once()

	cycle, n, err := uc.MarkLate(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, curCycle, cycle)
	require.Equal(t, int64(3), n)

	cycle, n, err = uc.MarkLate(context.Background(), "2026-10-08")
	require.NoError(t, err)
	require.Equal(t, prevCycle, cycle)
	require.Zero(t, n)

	_, _, err = uc.MarkLate(context.Background(), "not-a-date")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertExpectations(t)
}

func laundry() *entities.Chore {
	return &entities.Chore{ID: "laundry", Name: "Laundry", Subtasks: []string{"wash", "dry", "fold"}}
}

func TestUsecase_ToggleSubtaskPersists(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)
	session := entities.Session{MemberID: "A"}

	stored := &entities.Assignment{ID: "a1", MemberID: "A", ChoreID: "laundry", Cycle: curCycle, SubtasksCompleted: []string{"wash", "dry"}}
	saved := &entities.Assignment{ID: "a1", MemberID: "A", ChoreID: "laundry", Cycle: curCycle, Completed: true, SubtasksCompleted: []string{"wash", "dry", "fold"}}
	repo.On("GetAssignment", mock.Anything, "a1").Return(stored, nil)
	repo.On("GetChore", mock.Anything, "laundry").Return(laundry(), nil)
	repo.On("UpdateAssignmentProgress", mock.Anything, "a1", []string{"wash", "dry", "fold"}, true).Return(saved, nil)

	got, err := uc.ToggleSubtask(context.Background(), session, "a1", "fold")
	require.NoError(t, err)
	require.Equal(t, saved, got)
	repo.AssertExpectations(t)
}

func TestUsecase_ToggleSubtaskFailedPersist(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)
	boom := errors.New("write failed")

	repo.On("GetAssignment", mock.Anything, "a1").Return(&entities.Assignment{ID: "a1", ChoreID: "laundry"}, nil)
	repo.On("GetChore", mock.Anything, "laundry").Return(laundry(), nil)
	repo.On("UpdateAssignmentProgress", mock.Anything, "a1", []string{"wash"}, false).Return(nil, boom)

	got, err := uc.ToggleSubtask(context.Background(), entities.Session{MemberID: "A"}, "a1", "wash")
	require.ErrorIs(t, err, boom)
	require.Nil(t, got)
}

func TestUsecase_ProgressValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)

	_, err := uc.ToggleSubtask(context.Background(), entities.Session{}, "a1", "wash")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.CompleteAll(context.Background(), entities.Session{MemberID: "A"}, "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.On("GetAssignment", mock.Anything, "a1").Return(&entities.Assignment{ID: "a1", ChoreID: "laundry"}, nil)
	repo.On("GetChore", mock.Anything, "laundry").Return(laundry(), nil)
	_, err = uc.ToggleSubtask(context.Background(), entities.Session{MemberID: "A"}, "a1", "iron")
	require.ErrorIs(t, err, entities.ErrUnknownSubtask)

	repo.AssertNotCalled(t, "UpdateAssignmentProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_CompleteAndReset(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)
	session := entities.Session{MemberID: "A"}

	repo.On("GetAssignment", mock.Anything, "a1").Return(&entities.Assignment{ID: "a1", ChoreID: "laundry", SubtasksCompleted: []string{"dry"}}, nil)
	repo.On("GetChore", mock.Anything, "laundry").Return(laundry(), nil)
	repo.On("UpdateAssignmentProgress", mock.Anything, "a1", []string{"wash", "dry", "fold"}, true).
		Return(&entities.Assignment{ID: "a1", Completed: true}, nil).Once()
	repo.On("UpdateAssignmentProgress", mock.Anything, "a1", []string{}, false).
		Return(&entities.Assignment{ID: "a1"}, nil).Once()

	got, err := uc.CompleteAll(context.Background(), session, "a1")
	require.NoError(t, err)
	require.True(t, got.Completed)

	got, err = uc.ResetAll(context.Background(), session, "a1")
	require.NoError(t, err)
	require.False(t, got.Completed)
	repo.AssertExpectations(t)
}

func TestUsecase_SubmitRatingValidation(t *testing.T) {
	rater := entities.Session{MemberID: "A"}
	cases := []struct {
		name    string
		now     time.Time
		session entities.Session
		score   int
		stored  *entities.Assignment
		want    error
	}{
		{name: "anonymous", now: checkDay, session: entities.Session{}, score: 4, want: entities.ErrInvalidArgument},
		{name: "score too low", now: checkDay, session: rater, score: 0, want: entities.ErrInvalidScore},
		{name: "score too high", now: checkDay, session: rater, score: 6, want: entities.ErrInvalidScore},
		{name: "off day", now: midWeek, session: rater, score: 4, want: entities.ErrNotQualityCheckDay},
		{
			name: "self rating", now: checkDay, session: rater, score: 4,
			stored: &entities.Assignment{ID: "a1", MemberID: "A", ChoreID: "c1", Cycle: prevCycle, Completed: true},
			want:   entities.ErrSelfRating,
		},
		{
			name: "current cycle", now: checkDay, session: rater, score: 4,
			stored: &entities.Assignment{ID: "a1", MemberID: "B", ChoreID: "c1", Cycle: curCycle, Completed: true},
			want:   entities.ErrRatingClosed,
		},
		{
			name: "not completed", now: checkDay, session: rater, score: 4,
			stored: &entities.Assignment{ID: "a1", MemberID: "B", ChoreID: "c1", Cycle: prevCycle},
			want:   entities.ErrRatingClosed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &repoMock{}
			uc := newUsecase(repo, tc.now)
			if tc.stored != nil {
				repo.On("GetAssignment", mock.Anything, "a1").Return(tc.stored, nil)
			}

			_, err := uc.SubmitRating(context.Background(), tc.session, "a1", tc.score)
			require.ErrorIs(t, err, tc.want)
			require.True(t, entities.IsValidation(err))
			repo.AssertNotCalled(t, "UpsertRating", mock.Anything, mock.Anything)
		})
	}
}

func TestUsecase_SubmitRatingTwiceKeepsOneRow(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, checkDay)
	session := entities.Session{MemberID: "A"}

	repo.On("GetAssignment", mock.Anything, "a1").
		Return(&entities.Assignment{ID: "a1", MemberID: "B", ChoreID: "c1", Cycle: prevCycle, Completed: true}, nil)

	tuple := func(score int) interface{} {
		return mock.MatchedBy(func(r entities.Rating) bool {
			return r.RaterID == "A" && r.RateeID == "B" && r.ChoreID == "c1" && r.Cycle == prevCycle && r.Score == score
		})
	}
	repo.On("UpsertRating", mock.Anything, tuple(2)).
		Return(&entities.Rating{ID: "id-1", RaterID: "A", RateeID: "B", ChoreID: "c1", Cycle: prevCycle, Score: 2}, true, nil).Once()
	repo.On("UpsertRating", mock.Anything, tuple(5)).
		Return(&entities.Rating{ID: "id-1", RaterID: "A", RateeID: "B", ChoreID: "c1", Cycle: prevCycle, Score: 5}, false, nil).Once()

	first, err := uc.SubmitRating(context.Background(), session, "a1", 2)
	require.NoError(t, err)
	second, err := uc.SubmitRating(context.Background(), session, "a1", 5)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 5, second.Score)
	repo.AssertExpectations(t)
}

func TestUsecase_QualityCheckAggregates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, checkDay)
	session := entities.Session{MemberID: "A"}

	completed := true
	detail := func(id, member, chore string) entities.AssignmentDetails {
		return entities.AssignmentDetails{Assignment: entities.Assignment{
			ID: id, MemberID: member, ChoreID: chore, Cycle: prevCycle, Completed: true,
		}}
	}
	repo.On("ListAssignmentDetails", mock.Anything, entities.AssignmentFilter{
		Cycle: prevCycle, ExcludeMember: "A", Completed: &completed,
	}).Return([]entities.AssignmentDetails{detail("a1", "B", "c1"), detail("a2", "C", "c2"), detail("a3", "B", "c3")}, nil)
	repo.On("ListRatings", mock.Anything, "A", prevCycle).Return([]entities.Rating{
		{ID: "r1", RaterID: "A", RateeID: "B", ChoreID: "c1", Cycle: prevCycle, Score: 4},
		{ID: "r2", RaterID: "A", RateeID: "C", ChoreID: "c2", Cycle: prevCycle, Score: 3},
		{ID: "r3", RaterID: "A", RateeID: "C", ChoreID: "c9", Cycle: prevCycle, Score: 1},
	}, nil)

	qc, err := uc.QualityCheck(context.Background(), session)
	require.NoError(t, err)
	require.True(t, qc.Available)
	require.Equal(t, prevCycle, qc.Cycle)
	require.Equal(t, 3, qc.Total)
	require.Equal(t, 2, qc.Rated)
	require.InDelta(t, 3.5, qc.Average, 0.0001)
}

func TestUsecase_CycleBoard(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)
	session := entities.Session{MemberID: "A"}

	repo.On("ListAssignmentDetails", mock.Anything, entities.AssignmentFilter{Cycle: curCycle, MemberID: "A"}).
		Return([]entities.AssignmentDetails{
			{Assignment: entities.Assignment{ID: "a1", MemberID: "A", Completed: true, Late: true}},
			{Assignment: entities.Assignment{ID: "a2", MemberID: "A", Late: true}},
		}, nil)

	board, err := uc.CycleBoard(context.Background(), session, true)
	require.NoError(t, err)
	require.Equal(t, curCycle, board.Cycle)
	require.Equal(t, calendar.CycleKey("2026-10-19"), board.CycleEnd)
	require.Equal(t, 2, board.Total)
	require.Equal(t, 1, board.Completed)
	require.True(t, board.LateWarning)

	_, err = uc.CycleBoard(context.Background(), entities.Session{}, true)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_Calendar(t *testing.T) {
	uc := newUsecase(&repoMock{}, checkDay, WithLocation(time.FixedZone("UTC+5", 5*3600)))

	info := uc.Calendar()
	// 20:00 UTC Monday is already Tuesday in UTC+5.
	require.True(t, info.IsRotationDay)
	require.False(t, info.IsQualityCheckDay)
	require.Equal(t, nextCycle, info.Cycle)
}

func TestUsecase_MemberStatsValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)

	_, err := uc.MemberStats(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "MemberStats", mock.Anything, mock.Anything)
}

func TestUsecase_Provision(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)

	h := entities.Household{
		Members: roster("A", "B"),
		Chores:  []entities.Chore{{ID: "c1", Name: "Laundry"}, {ID: "c2", Name: "Trash"}},
		Initial: map[string]string{"c1": "A", "c2": "B"},
	}
	repo.On("UpsertMember", mock.Anything, mock.Anything).Return(&entities.Member{}, nil)
	repo.On("UpsertChore", mock.Anything, mock.Anything).Return(&entities.Chore{}, nil)
	repo.On("ListMembers", mock.Anything).Return(roster("A", "B"), nil)
	repo.On("ListAssignments", mock.Anything, entities.AssignmentFilter{Cycle: curCycle}).
		Return([]entities.Assignment{{ID: "old", MemberID: "A", ChoreID: "c1", Cycle: curCycle}}, nil)
	repo.On("InsertAssignments", mock.Anything, []entities.Assignment{
		{ID: "id-1", MemberID: "B", ChoreID: "c2", Cycle: curCycle, SubtasksCompleted: []string{}},
	}).Return(nil)

	res, err := uc.Provision(context.Background(), h)
	require.NoError(t, err)
	require.Equal(t, entities.ProvisionResult{Members: 2, Chores: 2, Assigned: 1, Kept: 1}, res)
	repo.AssertExpectations(t)
}

func TestUsecase_ProvisionUnknownMember(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, midWeek)

	repo.On("ListMembers", mock.Anything).Return(roster("A"), nil)
	repo.On("ListAssignments", mock.Anything, mock.Anything).Return([]entities.Assignment{}, nil)

	_, err := uc.Provision(context.Background(), entities.Household{Initial: map[string]string{"c1": "ghost"}})
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
	repo.AssertNotCalled(t, "InsertAssignments", mock.Anything, mock.Anything)
}
