package stats

import "time"

// Note is a free-text note attached to a project.
type Note struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ProgressItem is a completable checklist entry attached to a project.
type ProgressItem struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Story is a user story attached to a project.
type Story struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Journey is a user journey attached to a project.
type Journey struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Design is a design artifact attached to a project.
type Design struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Collections bundles the flat child-record collections the index is built
// from. Each slice is the full set for the user, not pre-grouped.
type Collections struct {
	Notes         []Note
	ProgressItems []ProgressItem
	Stories       []Story
	Journeys      []Journey
	Designs       []Design
}

// ProjectStats is the derived per-project rollup consumed by the view.
type ProjectStats struct {
	NoteCount        int `json:"note_count"`
	ProgressCount    int `json:"progress_count"`
	StoryCount       int `json:"story_count"`
	JourneyCount     int `json:"journey_count"`
	DesignCount      int `json:"design_count"`
	ProgressPercent  int `json:"progress_percent"`
	StakeholderCount int `json:"stakeholder_count"`
}
