package stats

import (
	"math"

	"github.com/rowanlane/deckview/internal/domain/project"
)

// BuildIndex computes the derived stats for every project in the
// authoritative set. It groups each child collection by project id in a
// single pass, then assembles one ProjectStats per project, so the cost is
// O(child records + projects) rather than O(projects x children).
//
// The function is pure: identical inputs yield structurally identical
// output. Callers rebuild the whole map whenever any input changes and
// replace their copy atomically; the result is never patched in place.
func BuildIndex(projects []project.Project, cols Collections, stakeholders map[string]int) map[string]ProjectStats {
	notes := make(map[string][]Note)
	for _, n := range cols.Notes {
		notes[n.ProjectID] = append(notes[n.ProjectID], n)
	}
	progress := make(map[string][]ProgressItem)
	for _, p := range cols.ProgressItems {
		progress[p.ProjectID] = append(progress[p.ProjectID], p)
	}
	stories := make(map[string][]Story)
	for _, s := range cols.Stories {
		stories[s.ProjectID] = append(stories[s.ProjectID], s)
	}
	journeys := make(map[string][]Journey)
	for _, j := range cols.Journeys {
		journeys[j.ProjectID] = append(journeys[j.ProjectID], j)
	}
	designs := make(map[string][]Design)
	for _, d := range cols.Designs {
		designs[d.ProjectID] = append(designs[d.ProjectID], d)
	}

	index := make(map[string]ProjectStats, len(projects))
	for _, proj := range projects {
		items := progress[proj.ID]
		index[proj.ID] = ProjectStats{
			NoteCount:        len(notes[proj.ID]),
			ProgressCount:    len(items),
			StoryCount:       len(stories[proj.ID]),
			JourneyCount:     len(journeys[proj.ID]),
			DesignCount:      len(designs[proj.ID]),
			ProgressPercent:  progressPercent(items),
			StakeholderCount: stakeholders[proj.ID],
		}
	}
	return index
}

// progressPercent is 0 for an empty item list, never NaN.
func progressPercent(items []ProgressItem) int {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(items))))
}
