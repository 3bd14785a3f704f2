// Package entities contains core business entities.
package entities

// Chore is a recurring household task made of ordered sub-tasks.
type Chore struct {
	ID       string
	Name     string
	Subtasks []string
}

// HasSubtask reports whether label is one of the chore's sub-tasks.
func (c Chore) HasSubtask(label string) bool {
	for _, s := range c.Subtasks {
		if s == label {
			return true
		}
	}
	return false
}
