// Package entities contains core business entities.
package entities

import (
	"time"

	"chore-app/internal/calendar"
)

// CycleInfo describes the calendar position of an instant.
type CycleInfo struct {
	Now               time.Time
	Cycle             calendar.CycleKey
	CycleEnd          calendar.CycleKey
	Next              calendar.CycleKey
	Previous          calendar.CycleKey
	IsRotationDay     bool
	IsQualityCheckDay bool
}

// DescribeCycle evaluates the calendar rules at now.
func DescribeCycle(now time.Time) CycleInfo {
	return CycleInfo{
		Now:               now,
		Cycle:             calendar.CycleStart(now),
		CycleEnd:          calendar.CycleEnd(now),
		Next:              calendar.NextCycleStart(now),
		Previous:          calendar.PreviousCycleStart(now),
		IsRotationDay:     calendar.IsRotationDay(now),
		IsQualityCheckDay: calendar.IsQualityCheckDay(now),
	}
}

// Household is a provisioning request: roster, catalog and the first
// assignment of each chore for the current cycle keyed by chore id.
type Household struct {
	Members []Member
	Chores  []Chore
	Initial map[string]string
}

// ProvisionResult summarises a provisioning run.
type ProvisionResult struct {
	Members  int
	Chores   int
	Assigned int
	Kept     int
}
