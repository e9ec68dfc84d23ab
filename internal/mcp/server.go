package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rowanlane/deckview/internal/domain/view"
)

const serverInstructions = `Deckview exposes a per-user project board: projects in a saved order,
each with note, progress, story, journey, design, and stakeholder counts.
Call get_board first to load the board, then search_board, load_more,
move_project, and the create/update/delete tools to work with it. Every
board-touching tool returns the current board snapshot, including any
notifications about changes that could not be saved.`

// Config contains server configuration.
type Config struct {
	Views         *view.Manager
	Sessions      SessionEnder
	Resolver      UserResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "deckview",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio mode: always disable auth (local dev only)
	if cfg.TransportMode == "stdio" {
		server.AddReceivingMiddleware(noAuthMiddleware("default"))
	} else {
		if cfg.AuthEnabled {
			server.AddReceivingMiddleware(authMiddleware(cfg.Resolver, cfg.Sessions))
		} else {
			server.AddReceivingMiddleware(noAuthMiddleware("default"))
		}
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Views, cfg.Sessions)

	return server
}
