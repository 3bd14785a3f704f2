package entities

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentIsLate(t *testing.T) {
	tests := []struct {
		name      string
		completed bool
		late      bool
		want      bool
	}{
		{name: "incomplete and flagged", completed: false, late: true, want: true},
		{name: "completed after flagged", completed: true, late: true, want: false},
		{name: "incomplete not flagged", completed: false, late: false, want: false},
		{name: "completed on time", completed: true, late: false, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			a := Assignment{Completed: tt.completed, Late: tt.late}
			require.Equal(t, tt.want, a.IsLate())
			require.Equal(t, tt.late, a.Late)
		})
	}
}

func TestChoreHasSubtask(t *testing.T) {
	c := Chore{Subtasks: []string{"wash", "dry", "fold"}}
	require.True(t, c.HasSubtask("dry"))
	require.False(t, c.HasSubtask("iron"))
}

func TestRatingMatches(t *testing.T) {
	r := Rating{RaterID: "a", RateeID: "b", ChoreID: "c1", Cycle: "2026-10-06", Score: 4}
	require.True(t, r.Matches(Assignment{MemberID: "b", ChoreID: "c1", Cycle: "2026-10-06"}))
	require.False(t, r.Matches(Assignment{MemberID: "b", ChoreID: "c1", Cycle: "2026-10-13"}))
	require.False(t, r.Matches(Assignment{MemberID: "a", ChoreID: "c1", Cycle: "2026-10-06"}))
}

func TestIsValidation(t *testing.T) {
	require.True(t, IsValidation(fmt.Errorf("%w: no members", ErrEmptyRoster)))
	require.True(t, IsValidation(ErrSelfRating))
	require.False(t, IsValidation(ErrAssignmentNotFound))
	require.False(t, IsValidation(fmt.Errorf("insert: boom")))
}

func TestSessionAnonymous(t *testing.T) {
	require.True(t, Session{}.Anonymous())
	require.False(t, Session{MemberID: "m1"}.Anonymous())
}
