package view

import (
	"strings"

	"github.com/rowanlane/deckview/internal/domain/project"
)

// filterProjects returns the projects whose name or overview contains the
// query, case-insensitively. A blank or whitespace-only query matches
// everything. The filter always runs over the full working order, never over
// the currently visible slice.
func filterProjects(projects []project.Project, query string) []project.Project {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return projects
	}

	matched := make([]project.Project, 0, len(projects))
	for _, proj := range projects {
		if strings.Contains(strings.ToLower(proj.Name), query) ||
			strings.Contains(strings.ToLower(proj.Overview), query) {
			matched = append(matched, proj)
		}
	}
	return matched
}
