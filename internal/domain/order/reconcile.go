// Package order maintains a user's explicit project ordering: reconciling a
// persisted preference against the authoritative project set, applying
// drag-to-reorder moves, and persisting the result.
package order

import "github.com/rowanlane/deckview/internal/domain/project"

// Reconcile merges a persisted ordering with the authoritative project set.
// Known ids keep their persisted position; ids whose project no longer
// exists are dropped silently; projects absent from the preference are
// appended in their authoritative encounter order. The result contains every
// authoritative project exactly once.
func Reconcile(persisted []string, projects []project.Project) []project.Project {
	byID := make(map[string]project.Project, len(projects))
	for _, proj := range projects {
		byID[proj.ID] = proj
	}

	ordered := make([]project.Project, 0, len(projects))
	seen := make(map[string]bool, len(persisted))
	for _, id := range persisted {
		if seen[id] {
			continue
		}
		seen[id] = true
		if proj, ok := byID[id]; ok {
			ordered = append(ordered, proj)
		}
	}

	for _, proj := range projects {
		if !seen[proj.ID] {
			ordered = append(ordered, proj)
		}
	}
	return ordered
}

// ApplyMove relocates the project with movedID to the position currently
// held by targetID, shifting the elements in between by one (list move, not
// swap). When either id is absent, or the ids are equal, the input order is
// returned unchanged; a missing id is a no-op, not an error. On a real move
// a fresh slice is returned, leaving the input untouched.
func ApplyMove(order []project.Project, movedID, targetID string) []project.Project {
	from, to := -1, -1
	for i, proj := range order {
		switch proj.ID {
		case movedID:
			from = i
		case targetID:
			to = i
		}
	}
	if from < 0 || to < 0 || movedID == targetID {
		return order
	}

	moved := order[from]
	next := make([]project.Project, 0, len(order))
	next = append(next, order[:from]...)
	next = append(next, order[from+1:]...)
	next = append(next[:to], append([]project.Project{moved}, next[to:]...)...)
	return next
}

// IDs extracts the id sequence of an ordered project list.
func IDs(order []project.Project) []string {
	ids := make([]string, len(order))
	for i, proj := range order {
		ids[i] = proj.ID
	}
	return ids
}
