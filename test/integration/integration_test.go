package integration_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rowanlane/deckview/internal/auth"
	"github.com/rowanlane/deckview/internal/domain/order"
	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/domain/stats"
	"github.com/rowanlane/deckview/internal/domain/view"
	"github.com/rowanlane/deckview/internal/sqlite"
)

type testEnv struct {
	db       *sqlite.DB
	orders   *order.Service
	projects *project.Service
	provider *auth.LocalProvider
	views    *view.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	projectRepo := sqlite.NewProjectRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	childRepo := sqlite.NewChildRecordRepository(db)
	stakeholderRepo := sqlite.NewStakeholderRepository(db)
	credentialRepo := sqlite.NewCredentialRepository(db)

	projectSvc := project.NewService(projectRepo, nil)
	orderSvc := order.NewService(orderRepo, nil)
	statsSvc := stats.NewService(childRepo, nil)
	loader := stats.NewLoader(stakeholderRepo, nil)

	cfg := view.Config{InitialWindow: 3, WindowStep: 3, Debounce: 10 * time.Millisecond}
	views := view.NewManager(projectSvc, orderSvc, statsSvc, loader, cfg, nil)

	provider := auth.NewLocalProvider(credentialRepo, nil)
	provider.OnSessionChange(views.HandleSessionChange)

	return &testEnv{
		db:       db,
		orders:   orderSvc,
		projects: projectSvc,
		provider: provider,
		views:    views,
	}
}

func visibleIDs(sess *view.Session) []string {
	entries := sess.Visible()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Project.ID
	}
	return ids
}

func TestBoardLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess := env.views.Session("u1")

	// Create projects through the session
	first, err := sess.CreateProject(ctx, project.CreateRequest{Name: "Alpha", Overview: "first project"})
	require.NoError(t, err)
	second, err := sess.CreateProject(ctx, project.CreateRequest{Name: "Beta"})
	require.NoError(t, err)
	third, err := sess.CreateProject(ctx, project.CreateRequest{Name: "Gamma"})
	require.NoError(t, err)

	require.Equal(t, []string{first.ID, second.ID, third.ID}, visibleIDs(sess))

	// Reorder and verify persistence survives an eviction
	sess.Move(ctx, third.ID, first.ID)
	require.Equal(t, []string{third.ID, first.ID, second.ID}, visibleIDs(sess))
	require.Empty(t, sess.DrainNotifications())

	env.views.Evict("u1")
	fresh := env.views.Session("u1")
	require.NoError(t, fresh.Refresh(ctx))
	require.Equal(t, []string{third.ID, first.ID, second.ID}, visibleIDs(fresh))
}

func TestBoardStatsFromStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess := env.views.Session("u1")
	proj, err := sess.CreateProject(ctx, project.CreateRequest{Name: "Alpha"})
	require.NoError(t, err)

	_, err = env.db.ExecContext(ctx,
		`INSERT INTO notes (id, user_id, project_id, body) VALUES ('n1', 'u1', ?, 'note')`, proj.ID)
	require.NoError(t, err)
	_, err = env.db.ExecContext(ctx,
		`INSERT INTO progress_items (id, user_id, project_id, title, completed) VALUES
		 ('i1', 'u1', ?, 'done', 1), ('i2', 'u1', ?, 'open', 0)`, proj.ID, proj.ID)
	require.NoError(t, err)
	_, err = env.db.ExecContext(ctx,
		`INSERT INTO stakeholders (id, project_id, name) VALUES ('s1', ?, 'Ana')`, proj.ID)
	require.NoError(t, err)

	require.NoError(t, sess.Refresh(ctx))
	entries := sess.Visible()
	require.Len(t, entries, 1)
	require.Equal(t, 1, entries[0].Stats.NoteCount)
	require.Equal(t, 2, entries[0].Stats.ProgressCount)
	require.Equal(t, 50, entries[0].Stats.ProgressPercent)
	require.Equal(t, 1, entries[0].Stats.StakeholderCount)
}

func TestDeletedProjectDropsOutOfOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess := env.views.Session("u1")
	first, err := sess.CreateProject(ctx, project.CreateRequest{Name: "Alpha"})
	require.NoError(t, err)
	second, err := sess.CreateProject(ctx, project.CreateRequest{Name: "Beta"})
	require.NoError(t, err)

	sess.Move(ctx, second.ID, first.ID)
	require.NoError(t, sess.DeleteProject(ctx, second.ID))
	require.Equal(t, []string{first.ID}, visibleIDs(sess))

	// Stored preference no longer carries the deleted id
	env.views.Evict("u1")
	fresh := env.views.Session("u1")
	require.NoError(t, fresh.Refresh(ctx))
	require.Equal(t, []string{first.ID}, visibleIDs(fresh))
}

func TestSearchAndWindow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess := env.views.Session("u1")
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("Sprint %d", i)
		if i%2 == 0 {
			name = fmt.Sprintf("Launch %d", i)
		}
		_, err := sess.CreateProject(ctx, project.CreateRequest{Name: name})
		require.NoError(t, err)
	}

	require.Len(t, sess.Visible(), 3)
	require.Equal(t, 5, sess.TotalFiltered())

	sess.LoadMore()
	require.Len(t, sess.Visible(), 5)

	sess.SetQuery("launch")
	sess.FlushQuery()
	require.Equal(t, 3, sess.TotalFiltered())
	for _, entry := range sess.Visible() {
		require.Contains(t, entry.Project.Name, "Launch")
	}
}

func TestSignInAndSignOutLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.provider.SignUp(ctx, "ana@example.com", "hunter2")
	require.NoError(t, err)

	signedIn, err := env.provider.SignIn(ctx, "ana@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, user.ID, signedIn.ID)

	sess := env.views.Session(user.ID)
	_, err = sess.CreateProject(ctx, project.CreateRequest{Name: "Alpha"})
	require.NoError(t, err)
	require.Len(t, sess.Visible(), 1)

	// Sign-out evicts the view session; the replacement starts empty until
	// refreshed, then rebuilds from the store.
	require.NoError(t, env.provider.SignOut(ctx))
	fresh := env.views.Session(user.ID)
	require.NotSame(t, sess, fresh)
	require.NoError(t, fresh.Refresh(ctx))
	require.Len(t, fresh.Visible(), 1)
}

func TestExpiredSessionEvictsBoard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.provider.SignUp(ctx, "ana@example.com", "hunter2")
	require.NoError(t, err)
	_, err = env.provider.SignIn(ctx, "ana@example.com", "hunter2")
	require.NoError(t, err)

	sess := env.views.Session(user.ID)
	_, err = sess.CreateProject(ctx, project.CreateRequest{Name: "Alpha"})
	require.NoError(t, err)

	// The session token disappears out from under the signed-in user.
	_, err = env.db.ExecContext(ctx, `DELETE FROM session_tokens WHERE user_id = ?`, user.ID)
	require.NoError(t, err)

	// Expiry is handled as a sign-out: the provider notifies listeners with
	// nil and the view manager evicts the board session.
	_, err = env.provider.CurrentSession(ctx)
	require.ErrorIs(t, err, auth.ErrSessionExpired)

	fresh := env.views.Session(user.ID)
	require.NotSame(t, sess, fresh)

	current, err := env.provider.CurrentSession(ctx)
	require.NoError(t, err)
	require.Nil(t, current)
}
