package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestCycleBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		at    string
		start CycleKey
		end   CycleKey
		next  CycleKey
		prev  CycleKey
	}{
		{name: "mid week", at: "2026-10-14T12:00:00Z", start: "2026-10-13", end: "2026-10-19", next: "2026-10-20", prev: "2026-10-06"},
		{name: "first instant of cycle", at: "2026-10-13T00:00:00Z", start: "2026-10-13", end: "2026-10-19", next: "2026-10-20", prev: "2026-10-06"},
		{name: "last instant of cycle", at: "2026-10-12T23:59:59Z", start: "2026-10-06", end: "2026-10-12", next: "2026-10-13", prev: "2026-09-29"},
		{name: "sunday stays in tuesday cycle", at: "2026-03-01T08:00:00Z", start: "2026-02-24", end: "2026-03-02", next: "2026-03-03", prev: "2026-02-17"},
		{name: "year boundary", at: "2026-01-01T09:30:00Z", start: "2025-12-30", end: "2026-01-05", next: "2026-01-06", prev: "2025-12-23"},
		{name: "leap day", at: "2024-02-29T18:00:00Z", start: "2024-02-27", end: "2024-03-04", next: "2024-03-05", prev: "2024-02-20"},
		{name: "non leap february", at: "2023-03-01T18:00:00Z", start: "2023-02-28", end: "2023-03-06", next: "2023-03-07", prev: "2023-02-21"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ts := at(t, tt.at)
			require.Equal(t, tt.start, CycleStart(ts))
			require.Equal(t, tt.end, CycleEnd(ts))
			require.Equal(t, tt.next, NextCycleStart(ts))
			require.Equal(t, tt.prev, PreviousCycleStart(ts))
		})
	}
}

func TestCycleStartIdempotent(t *testing.T) {
	ts := at(t, "2024-02-25T00:00:00Z")
	for i := 0; i < 400; i++ {
		day := ts.AddDate(0, 0, i)
		start := CycleStart(day)
		require.Equal(t, start, CycleStart(start.Time()), day.String())
		require.Equal(t, WeekStart, start.Time().Weekday(), day.String())
		require.Equal(t, start, start.Normalize())
	}
}

func TestCycleStartUsesInstantLocation(t *testing.T) {
	pacific := time.FixedZone("PDT", -7*60*60)
	ts := at(t, "2026-10-13T02:00:00Z").In(pacific)

	require.Equal(t, time.Monday, ts.Weekday())
	require.Equal(t, CycleKey("2026-10-06"), CycleStart(ts))
	require.True(t, IsQualityCheckDay(ts))
	require.False(t, IsRotationDay(ts))
}

func TestDesignatedDaysOncePerWeek(t *testing.T) {
	ts := at(t, "2025-12-23T10:00:00Z")
	for week := 0; week < 60; week++ {
		rotations, checks := 0, 0
		for day := 0; day < 7; day++ {
			d := ts.AddDate(0, 0, week*7+day)
			if IsRotationDay(d) {
				rotations++
				require.Equal(t, CycleStart(d).Time().Format(keyLayout), d.Format(keyLayout))
			}
			if IsQualityCheckDay(d) {
				checks++
				require.Equal(t, CycleEnd(d).Time().Format(keyLayout), d.Format(keyLayout))
			}
			require.False(t, IsRotationDay(d) && IsQualityCheckDay(d))
		}
		require.Equal(t, 1, rotations)
		require.Equal(t, 1, checks)
	}
}

func TestCycleKeyHelpers(t *testing.T) {
	key, err := ParseCycleKey("2024-02-27")
	require.NoError(t, err)
	require.Equal(t, CycleKey("2024-03-05"), key.AddWeeks(1))
	require.Equal(t, CycleKey("2024-02-20"), key.AddWeeks(-1))
	require.Equal(t, "Feb 27, 2024", key.Display())
	require.Equal(t, CycleKey("2024-02-27"), CycleKey("2024-03-01").Normalize())

	_, err = ParseCycleKey("27/02/2024")
	require.Error(t, err)
	require.True(t, CycleKey("garbage").Time().IsZero())
}
