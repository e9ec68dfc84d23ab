package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/domain/view"
)

// boardOutput is the shared board snapshot returned by every tool that
// touches the view, so clients always render from the freshest state.
type boardOutput struct {
	Entries       []view.Entry `json:"entries" jsonschema:"Visible projects in working order, each paired with its stats"`
	TotalMatching int          `json:"total_matching" jsonschema:"Total projects matching the current query, including those outside the window"`
	Query         string       `json:"query" jsonschema:"The search query currently applied to the board"`
	Flags         view.Flags   `json:"flags" jsonschema:"Loading indicators for the board"`
	Notifications []string     `json:"notifications,omitempty" jsonschema:"User-facing messages accumulated since the last call"`
}

func snapshotBoard(sess *view.Session) boardOutput {
	entries := sess.Visible()
	if entries == nil {
		entries = []view.Entry{}
	}
	return boardOutput{
		Entries:       entries,
		TotalMatching: sess.TotalFiltered(),
		Query:         sess.Query(),
		Flags:         sess.Flags(),
		Notifications: sess.DrainNotifications(),
	}
}

type getBoardInput struct{}

type searchBoardInput struct {
	Query string `json:"query" jsonschema:"Search text matched against project names and overviews. Empty shows all projects."`
}

type loadMoreInput struct{}

type moveProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"required,ID of the project being moved"`
	TargetID  string `json:"target_id" jsonschema:"required,ID of the project whose position the moved project takes"`
}

type createProjectInput struct {
	Name     string `json:"name" jsonschema:"required,Project display name"`
	Overview string `json:"overview,omitempty" jsonschema:"Short project overview"`
}

type updateProjectInput struct {
	ProjectID string  `json:"project_id" jsonschema:"required,ID of the project to update"`
	Name      *string `json:"name,omitempty" jsonschema:"New display name (omit to keep current)"`
	Overview  *string `json:"overview,omitempty" jsonschema:"New overview (omit to keep current)"`
}

type deleteProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"required,ID of the project to delete"`
}

type projectOutput struct {
	Project *project.Project `json:"project" jsonschema:"The created or updated project"`
	Board   boardOutput      `json:"board" jsonschema:"Board state after the change"`
}

type signOutInput struct{}

type signOutOutput struct {
	SignedOut bool `json:"signed_out" jsonschema:"Whether the session was ended"`
}

// SessionEnder ends the current authenticated session.
type SessionEnder interface {
	SignOut(ctx context.Context) error
}

func registerTools(server *sdkmcp.Server, views *view.Manager, sessions SessionEnder) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_board",
		Description: "Load the project board: projects in the user's saved order with per-project counts and overall progress. Rebuilds the board from storage.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args getBoardInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		sess := views.Session(getUserID(ctx))
		if err := sess.Refresh(ctx); err != nil {
			return nil, boardOutput{}, fmt.Errorf("loading board: %w", err)
		}
		return nil, snapshotBoard(sess), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_board",
		Description: "Filter the board by search text. Matching is case-insensitive against project names and overviews; an empty query clears the filter.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args searchBoardInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		sess := views.Session(getUserID(ctx))
		if err := sess.EnsureLoaded(ctx); err != nil {
			return nil, boardOutput{}, fmt.Errorf("loading board: %w", err)
		}
		sess.SetQuery(args.Query)
		// Tool calls carry a complete query rather than keystrokes, so the
		// debounce window is collapsed immediately.
		sess.FlushQuery()
		return nil, snapshotBoard(sess), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "load_more",
		Description: "Grow the visible window of the board by one page of projects.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args loadMoreInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		sess := views.Session(getUserID(ctx))
		if err := sess.EnsureLoaded(ctx); err != nil {
			return nil, boardOutput{}, fmt.Errorf("loading board: %w", err)
		}
		sess.LoadMore()
		return nil, snapshotBoard(sess), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_project",
		Description: "Move a project to another project's position on the board. The move is applied immediately; if saving fails the new order stays visible and a notification is returned.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args moveProjectInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		if args.ProjectID == "" || args.TargetID == "" {
			return nil, boardOutput{}, fmt.Errorf("project_id and target_id are required")
		}
		sess := views.Session(getUserID(ctx))
		if err := sess.EnsureLoaded(ctx); err != nil {
			return nil, boardOutput{}, fmt.Errorf("loading board: %w", err)
		}
		sess.Move(ctx, args.ProjectID, args.TargetID)
		return nil, snapshotBoard(sess), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project. The project appears at the end of the board order.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args createProjectInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		sess := views.Session(getUserID(ctx))
		created, err := sess.CreateProject(ctx, project.CreateRequest{
			Name:     args.Name,
			Overview: args.Overview,
		})
		if err != nil {
			return nil, projectOutput{}, fmt.Errorf("creating project: %w", err)
		}
		return nil, projectOutput{Project: created, Board: snapshotBoard(sess)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update a project's name or overview.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args updateProjectInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		if args.ProjectID == "" {
			return nil, projectOutput{}, fmt.Errorf("project_id is required")
		}
		sess := views.Session(getUserID(ctx))
		updated, err := sess.UpdateProject(ctx, project.UpdateRequest{
			ID:       args.ProjectID,
			Name:     args.Name,
			Overview: args.Overview,
		})
		if err != nil {
			return nil, projectOutput{}, fmt.Errorf("updating project: %w", err)
		}
		return nil, projectOutput{Project: updated, Board: snapshotBoard(sess)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project and remove it from the saved board order.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args deleteProjectInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		if args.ProjectID == "" {
			return nil, boardOutput{}, fmt.Errorf("project_id is required")
		}
		sess := views.Session(getUserID(ctx))
		if err := sess.DeleteProject(ctx, args.ProjectID); err != nil {
			return nil, boardOutput{}, fmt.Errorf("deleting project: %w", err)
		}
		return nil, snapshotBoard(sess), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "sign_out",
		Description: "End the current session and discard the in-memory board state.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args signOutInput) (*sdkmcp.CallToolResult, signOutOutput, error) {
		if sessions == nil {
			return nil, signOutOutput{}, fmt.Errorf("sign-out is not available in this mode")
		}
		if err := sessions.SignOut(ctx); err != nil {
			return nil, signOutOutput{}, fmt.Errorf("signing out: %w", err)
		}
		return nil, signOutOutput{SignedOut: true}, nil
	})
}
