// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Logging sets, deleting entries, and the today/history/weekly views.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/gymlog/internal/config"
	"github.com/harperreed/gymlog/internal/models"
	"github.com/harperreed/gymlog/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_sets",
		Description: "Log one exercise with one or more sets (reps x weight) for a date",
	}, s.handleLogSets)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "today_summary",
		Description: "Per-exercise set count, total reps, and total volume for a day (default today)",
	}, s.handleTodaySummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List logged sets, newest date first, optionally filtered by exercise",
	}, s.handleListHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entries",
		Description: "Delete logged sets by ID or ID prefix",
	}, s.handleDeleteEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_summary",
		Description: "Total volume per ISO week for the most recent weeks, zero-filled",
	}, s.handleWeeklySummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List every exercise name that has been logged",
	}, s.handleListExercises)
}

// Tool input/output types

type setInput struct {
	SetNum int     `json:"set_num,omitempty" jsonschema:"set number; defaults to the position in the list"`
	Reps   int     `json:"reps" jsonschema:"repetitions performed"`
	Weight float64 `json:"weight" jsonschema:"weight lifted in the chosen unit"`
}

type logSetsInput struct {
	Exercise string     `json:"exercise" jsonschema:"exercise name, e.g. Bench Press"`
	Date     string     `json:"date,omitempty" jsonschema:"workout date YYYY-MM-DD, defaults to today"`
	Unit     string     `json:"unit,omitempty" jsonschema:"weight unit: kg or lb"`
	Notes    string     `json:"notes,omitempty" jsonschema:"optional notes"`
	Sets     []setInput `json:"sets" jsonschema:"the sets performed, in order"`
}

type logSetsOutput struct {
	IDs     []string `json:"ids"`
	Volume  float64  `json:"volume"`
	Message string   `json:"message"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"date YYYY-MM-DD, defaults to today"`
}

type todayOutput struct {
	Date      string                  `json:"date"`
	Exercises []stats.ExerciseSummary `json:"exercises"`
	Message   string                  `json:"message,omitempty"`
}

type listHistoryInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"only show this exercise"`
	Limit    int    `json:"limit,omitempty" jsonschema:"max results (default 50)"`
}

type entryOutput struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Exercise string  `json:"exercise"`
	SetNum   int     `json:"set_num"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Unit     string  `json:"unit"`
	Volume   float64 `json:"volume"`
	Notes    string  `json:"notes,omitempty"`
	LoggedAt string  `json:"logged_at"`
}

type historyOutput struct {
	Total   int           `json:"total"`
	Entries []entryOutput `json:"entries"`
}

type deleteEntriesInput struct {
	IDs []string `json:"ids" jsonschema:"entry IDs or unique ID prefixes"`
}

type deleteOutput struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

type weeklyInput struct {
	Weeks    int    `json:"weeks,omitempty" jsonschema:"number of weeks to include (4-52)"`
	Exercise string `json:"exercise,omitempty" jsonschema:"exercise to chart, or All"`
}

type weeklyOutput struct {
	Exercise string             `json:"exercise"`
	Weeks    []stats.WeekVolume `json:"weeks"`
	Total    float64            `json:"total"`
}

type exercisesOutput struct {
	Exercises []string `json:"exercises"`
}

// Tool handlers

func (s *Server) handleLogSets(ctx context.Context, req *mcp.CallToolRequest, input logSetsInput) (*mcp.CallToolResult, logSetsOutput, error) {
	sets := make([]models.SetInput, 0, len(input.Sets))
	for _, in := range input.Sets {
		sets = append(sets, models.SetInput{SetNum: in.SetNum, Reps: in.Reps, Weight: in.Weight})
	}
	sets = models.NumberSets(sets)

	if err := models.ValidateSubmission(input.Exercise, sets); err != nil {
		return nil, logSetsOutput{}, err
	}

	unit := s.defaults.Unit
	if input.Unit != "" {
		if !models.IsValidUnit(input.Unit) {
			return nil, logSetsOutput{}, fmt.Errorf("unknown unit: %s (use kg or lb)", input.Unit)
		}
		unit = models.Unit(input.Unit)
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, logSetsOutput{}, err
	}

	batch, err := s.repo.AddBatch(date, input.Exercise, sets, unit, input.Notes)
	if err != nil {
		s.logger.Error("log_sets failed", zap.Error(err))
		return nil, logSetsOutput{}, fmt.Errorf("failed to log sets: %w", err)
	}

	out := logSetsOutput{}
	for _, e := range batch {
		out.IDs = append(out.IDs, e.ID)
		out.Volume += e.Volume
	}
	out.Message = fmt.Sprintf("Added %d sets for %s on %s (volume %.2f %s)",
		len(batch), strings.TrimSpace(input.Exercise), date, out.Volume, unit)
	return nil, out, nil
}

func (s *Server) handleTodaySummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, todayOutput, error) {
	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, todayOutput{}, err
	}

	entries, err := s.repo.Load()
	if err != nil {
		return nil, todayOutput{}, fmt.Errorf("failed to load entries: %w", err)
	}

	out := todayOutput{
		Date:      date.String(),
		Exercises: stats.TodaySummary(entries, date),
	}
	if len(out.Exercises) == 0 {
		out.Message = "No entries for this day yet."
	}
	return nil, out, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, historyOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}

	entries, err := s.repo.Load()
	if err != nil {
		return nil, historyOutput{}, fmt.Errorf("failed to load entries: %w", err)
	}

	history := stats.FullHistory(stats.FilterExercise(entries, input.Exercise))
	total := len(history)
	if total > input.Limit {
		history = history[:input.Limit]
	}
	return nil, historyOutput{Total: total, Entries: toEntryOutputs(history)}, nil
}

func (s *Server) handleDeleteEntries(ctx context.Context, req *mcp.CallToolRequest, input deleteEntriesInput) (*mcp.CallToolResult, deleteOutput, error) {
	if len(input.IDs) == 0 {
		return nil, deleteOutput{}, fmt.Errorf("no ids given")
	}

	ids, err := s.repo.ResolveIDs(input.IDs)
	if err != nil {
		return nil, deleteOutput{}, err
	}

	removed, err := s.repo.DeleteByIDs(ids)
	if err != nil {
		return nil, deleteOutput{}, fmt.Errorf("failed to delete entries: %w", err)
	}

	return nil, deleteOutput{
		Removed: removed,
		Message: fmt.Sprintf("Deleted %d rows.", removed),
	}, nil
}

func (s *Server) handleWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input weeklyInput) (*mcp.CallToolResult, weeklyOutput, error) {
	weeks := s.defaults.Weeks
	if input.Weeks != 0 {
		weeks = config.ClampWeeks(input.Weeks)
	}
	exercise := input.Exercise
	if exercise == "" {
		exercise = stats.AllExercises
	}

	entries, err := s.repo.Load()
	if err != nil {
		return nil, weeklyOutput{}, fmt.Errorf("failed to load entries: %w", err)
	}

	buckets := stats.WeeklySummary(entries, weeks, exercise, s.today())
	return nil, weeklyOutput{
		Exercise: exercise,
		Weeks:    buckets,
		Total:    stats.TotalVolume(buckets),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, exercisesOutput, error) {
	entries, err := s.repo.Load()
	if err != nil {
		return nil, exercisesOutput{}, fmt.Errorf("failed to load entries: %w", err)
	}

	names := stats.Exercises(entries)
	if names == nil {
		names = []string{}
	}
	return nil, exercisesOutput{Exercises: names}, nil
}

func toEntryOutputs(entries []models.SetEntry) []entryOutput {
	out := make([]entryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryOutput{
			ID:       e.ID,
			Date:     e.Date.String(),
			Exercise: e.Exercise,
			SetNum:   e.SetNum,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Unit:     string(e.Unit),
			Volume:   e.Volume,
			Notes:    e.Notes,
			LoggedAt: e.Timestamp.Format(time.RFC3339),
		})
	}
	return out
}

func (s *Server) parseDate(raw string) (models.Date, error) {
	if raw == "" {
		return s.today(), nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", raw)
	}
	return d, nil
}
