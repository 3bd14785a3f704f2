// Package entities contains core business entities.
package entities

import "time"

// Member is a household roster entry.
type Member struct {
	ID        string
	Name      string
	Position  int
	CreatedAt time.Time
}

// Session carries the acting member of a request. Identity is supplied by the
// caller and is not verified.
type Session struct {
	MemberID string
}

// Anonymous reports whether no member is attached to the session.
func (s Session) Anonymous() bool {
	return s.MemberID == ""
}
