// ABOUTME: MCP server setup for the workout log.
// ABOUTME: Wraps the MCP server with storage Repository access and logging defaults.
package mcp

import (
	"context"

	"github.com/harperreed/gymlog/internal/models"
	"github.com/harperreed/gymlog/internal/stats"
	"github.com/harperreed/gymlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Defaults are applied when a tool call leaves a field empty.
type Defaults struct {
	Unit  models.Unit
	Weeks int
}

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	defaults  Defaults
	logger    *zap.Logger
	today     func() models.Date
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, defaults Defaults, logger *zap.Logger) (*Server, error) {
	if defaults.Unit == "" {
		defaults.Unit = models.UnitKg
	}
	if defaults.Weeks <= 0 {
		defaults.Weeks = stats.DefaultWeeks
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gymlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		defaults:  defaults,
		logger:    logger,
		today:     models.Today,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("starting MCP server", zap.String("table", s.repo.Path()))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
