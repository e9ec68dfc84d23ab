package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanlane/deckview/internal/domain/order"
	"github.com/rowanlane/deckview/internal/domain/project"
)

func projects(ids ...string) []project.Project {
	out := make([]project.Project, len(ids))
	for i, id := range ids {
		out[i] = project.Project{ID: id, Name: "Project " + id}
	}
	return out
}

func TestReconcile_PersistedOrderWins(t *testing.T) {
	got := order.Reconcile([]string{"b", "a"}, projects("a", "b", "c"))
	require.Equal(t, []string{"b", "a", "c"}, order.IDs(got))
}

func TestReconcile_DropsUnknownIDs(t *testing.T) {
	got := order.Reconcile([]string{"x", "a"}, projects("a"))
	require.Equal(t, []string{"a"}, order.IDs(got))
}

func TestReconcile_AppendsNewProjectsInEncounterOrder(t *testing.T) {
	got := order.Reconcile([]string{"c"}, projects("a", "b", "c"))
	require.Equal(t, []string{"c", "a", "b"}, order.IDs(got))
}

func TestReconcile_DedupesPersistedIDs(t *testing.T) {
	got := order.Reconcile([]string{"a", "a", "b"}, projects("a", "b"))
	require.Equal(t, []string{"a", "b"}, order.IDs(got))
}

func TestReconcile_EmptyPreference(t *testing.T) {
	got := order.Reconcile(nil, projects("a", "b"))
	require.Equal(t, []string{"a", "b"}, order.IDs(got))
}

func TestReconcile_EmptyProjects(t *testing.T) {
	got := order.Reconcile([]string{"a", "b"}, nil)
	require.Empty(t, got)
}

func TestApplyMove_MoveBackward(t *testing.T) {
	got := order.ApplyMove(projects("a", "b", "c"), "c", "a")
	require.Equal(t, []string{"c", "a", "b"}, order.IDs(got))
}

func TestApplyMove_MoveForward(t *testing.T) {
	got := order.ApplyMove(projects("a", "b", "c"), "a", "c")
	require.Equal(t, []string{"b", "c", "a"}, order.IDs(got))
}

func TestApplyMove_MissingIDIsNoOp(t *testing.T) {
	in := projects("a", "b", "c")
	got := order.ApplyMove(in, "x", "a")
	require.Equal(t, order.IDs(in), order.IDs(got))

	got = order.ApplyMove(in, "a", "x")
	require.Equal(t, order.IDs(in), order.IDs(got))
}

func TestApplyMove_SameIDIsNoOp(t *testing.T) {
	in := projects("a", "b", "c")
	got := order.ApplyMove(in, "b", "b")
	require.Equal(t, order.IDs(in), order.IDs(got))
}

func TestApplyMove_DoesNotMutateInput(t *testing.T) {
	in := projects("a", "b", "c")
	_ = order.ApplyMove(in, "c", "a")
	require.Equal(t, []string{"a", "b", "c"}, order.IDs(in))
}
