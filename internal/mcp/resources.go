// ABOUTME: MCP resource implementations for the workout log.
// ABOUTME: Provides gymlog://today, gymlog://history, gymlog://weekly, and gymlog://export.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/gymlog/internal/stats"
	"github.com/harperreed/gymlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI   = "gymlog://today"
	historyURI = "gymlog://history"
	weeklyURI  = "gymlog://weekly"
	exportURI  = "gymlog://export"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Workout",
		Description: "Per-exercise totals for sets logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         historyURI,
		Name:        "Workout History",
		Description: "Every logged set, newest date first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         weeklyURI,
		Name:        "Weekly Volume",
		Description: "Total volume per ISO week across all exercises",
		MIMEType:    "application/json",
	}, s.handleWeeklyResource)

	// The export resource is the same bytes the CLI writes to workout_history.csv.
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         exportURI,
		Name:        "Workout History CSV",
		Description: "Full history as CSV, newest date first",
		MIMEType:    storage.CSVContentType,
	}, s.handleExportResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	today := s.today()
	return jsonResource(todayURI, todayOutput{
		Date:      today.String(),
		Exercises: stats.TodaySummary(entries, today),
	})
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	history := stats.FullHistory(entries)
	return jsonResource(historyURI, historyOutput{Total: len(history), Entries: toEntryOutputs(history)})
}

func (s *Server) handleWeeklyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	buckets := stats.WeeklySummary(entries, s.defaults.Weeks, stats.AllExercises, s.today())
	return jsonResource(weeklyURI, weeklyOutput{
		Exercise: stats.AllExercises,
		Weeks:    buckets,
		Total:    stats.TotalVolume(buckets),
	})
}

func (s *Server) handleExportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	data, err := storage.ExportCSV(stats.FullHistory(entries))
	if err != nil {
		return nil, fmt.Errorf("failed to export csv: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      exportURI,
			MIMEType: storage.CSVContentType,
			Text:     string(data),
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
