package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanlane/deckview/internal/domain/project"
)

func TestFilterProjects(t *testing.T) {
	projects := []project.Project{
		{ID: "p1", Name: "Foobar", Overview: "marketing site"},
		{ID: "p2", Name: "Baz", Overview: "internal tool"},
		{ID: "p3", Name: "Quux", Overview: "contains bar somewhere"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty matches all", "", []string{"p1", "p2", "p3"}},
		{"whitespace matches all", "   ", []string{"p1", "p2", "p3"}},
		{"name match case-insensitive", "BAR", []string{"p1", "p3"}},
		{"overview match", "internal", []string{"p2"}},
		{"no match", "nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterProjects(projects, tt.query)
			ids := make([]string, 0, len(got))
			for _, proj := range got {
				ids = append(ids, proj.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterProjects_PreservesOrder(t *testing.T) {
	projects := []project.Project{
		{ID: "p3", Name: "alpha three"},
		{ID: "p1", Name: "alpha one"},
		{ID: "p2", Name: "beta"},
	}

	got := filterProjects(projects, "alpha")
	require.Len(t, got, 2)
	require.Equal(t, "p3", got[0].ID)
	require.Equal(t, "p1", got[1].ID)
}
