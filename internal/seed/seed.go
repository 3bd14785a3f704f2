// Package seed reads household provisioning files.
//
// A file lists the roster in rotation order and the chore catalog. A chore's
// assignee names the member (by id or name) who holds it in the current
// cycle; chores without one wait for an explicit assignment.
//
//	members:
//	  - name: Arman
//	  - name: Lucas
//	chores:
//	  - name: Laundry
//	    subtasks: [wash, dry, fold]
//	    assignee: Lucas
package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"chore-app/internal/entities"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// namespace derives stable ids for entries without one, so re-seeding the
// same file upserts instead of duplicating.
var namespace = uuid.MustParse("6f1c6f8e-3b0e-4f5f-9a53-8c2e7d1b4a10")

// File is the on-disk provisioning document.
type File struct {
	Members []MemberEntry `yaml:"members"`
	Chores  []ChoreEntry  `yaml:"chores"`
}

// MemberEntry is one roster line; list order is rotation order.
type MemberEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ChoreEntry is one catalog line.
type ChoreEntry struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Subtasks []string `yaml:"subtasks"`
	Assignee string   `yaml:"assignee"`
}

// Parse decodes a provisioning document into a household.
func Parse(data []byte) (entities.Household, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return entities.Household{}, fmt.Errorf("seed: payload is empty")
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return entities.Household{}, fmt.Errorf("seed: decode: %w", err)
	}
	return f.Household()
}

// LoadReader reads a provisioning document from r.
func LoadReader(r io.Reader) (entities.Household, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return entities.Household{}, fmt.Errorf("seed: read: %w", err)
	}
	return Parse(content)
}

// LoadFile reads a provisioning document from path.
func LoadFile(path string) (entities.Household, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return entities.Household{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	h, err := Parse(content)
	if err != nil {
		return entities.Household{}, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// Household validates the document and resolves ids and assignees.
func (f File) Household() (entities.Household, error) {
	h := entities.Household{Initial: map[string]string{}}
	byKey := make(map[string]string, len(f.Members)*2)

	for i, m := range f.Members {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return h, fmt.Errorf("seed: member %d has no name", i+1)
		}
		id := strings.TrimSpace(m.ID)
		if id == "" {
			id = stableID("member", name)
		}
		if _, dup := byKey[id]; dup {
			return h, fmt.Errorf("seed: duplicate member %q", id)
		}
		byKey[id] = id
		byKey[strings.ToLower(name)] = id
		h.Members = append(h.Members, entities.Member{ID: id, Name: name, Position: i})
	}

	seen := make(map[string]bool, len(f.Chores))
	for i, c := range f.Chores {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return h, fmt.Errorf("seed: chore %d has no name", i+1)
		}
		id := strings.TrimSpace(c.ID)
		if id == "" {
			id = stableID("chore", name)
		}
		if seen[id] {
			return h, fmt.Errorf("seed: duplicate chore %q", id)
		}
		seen[id] = true

		subtasks, err := normalizeSubtasks(name, c.Subtasks)
		if err != nil {
			return h, err
		}
		h.Chores = append(h.Chores, entities.Chore{ID: id, Name: name, Subtasks: subtasks})

		if assignee := strings.TrimSpace(c.Assignee); assignee != "" {
			memberID, ok := byKey[assignee]
			if !ok {
				memberID, ok = byKey[strings.ToLower(assignee)]
			}
			if !ok {
				return h, fmt.Errorf("seed: chore %q: unknown assignee %q", name, assignee)
			}
			h.Initial[id] = memberID
		}
	}

	return h, nil
}

func normalizeSubtasks(chore string, list []string) ([]string, error) {
	res := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, fmt.Errorf("seed: chore %q has an empty sub-task", chore)
		}
		if seen[s] {
			return nil, fmt.Errorf("seed: chore %q repeats sub-task %q", chore, s)
		}
		seen[s] = true
		res = append(res, s)
	}
	return res, nil
}

func stableID(kind, name string) string {
	return uuid.NewSHA1(namespace, []byte(kind+":"+strings.ToLower(name))).String()
}
