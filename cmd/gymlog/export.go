// ABOUTME: CLI commands for exporting and importing workout data.
// ABOUTME: Supports CSV, JSON, YAML, and Markdown export; CSV and JSON import.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/models"
	"github.com/harperreed/gymlog/internal/stats"
	"github.com/harperreed/gymlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportExercise string
	exportSince    string
)

var exportCmd = &cobra.Command{
	Use:   "export [format]",
	Short: "Export workout data",
	Long: `Export workout data in various formats, newest date first.

FORMATS:

  csv        Same columns as the backing table (default)
  json       Full JSON export (suitable for backup/restore)
  yaml       YAML grouped by date (human-readable)
  markdown   Markdown tables per day (for documentation/sharing)

OPTIONS:

  --output, -o     Write to this file; "-" writes to stdout.
                   CSV defaults to ./workout_history.csv, others to stdout.
  --exercise, -e   Only export one exercise
  --since          Only include days since this date (markdown only)

EXAMPLES:

  gymlog export                          # Writes workout_history.csv
  gymlog export csv -o -                 # CSV to stdout
  gymlog export json -o backup.json      # Save JSON to file
  gymlog export markdown --since 2024-01-01`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"csv", "json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "csv"
		if len(args) == 1 {
			format = args[0]
		}

		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		entries = stats.FullHistory(stats.FilterExercise(entries, exportExercise))

		output := exportOutput
		var data []byte

		switch format {
		case "csv":
			data, err = storage.ExportCSV(entries)
			if output == "" {
				output = storage.DefaultExportFilename
			}
		case "json":
			data, err = storage.ExportJSON(entries)
		case "yaml":
			data, err = storage.ExportYAML(entries)
		case "markdown", "md":
			var since *models.Date
			if exportSince != "" {
				d, perr := models.ParseDate(exportSince)
				if perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &d
			}
			data = []byte(storage.ExportMarkdown(entries, since))
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if output == "" || output == "-" {
			fmt.Print(string(data))
			if !strings.HasSuffix(string(data), "\n") {
				fmt.Println()
			}
			return nil
		}

		if err := os.WriteFile(output, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.Green("✓ Exported %d sets to %s", len(entries), output)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workout data from CSV or JSON",
	Long: `Import sets from a CSV table or a JSON export.

Rows whose ID already exists in the table are skipped, so importing the
same file twice is harmless. Malformed CSV cells are read as zero.

EXAMPLES:

  gymlog import workout_history.csv
  gymlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var entries []models.SetEntry
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".json":
			entries, err = storage.ParseJSON(data)
		default:
			entries, err = storage.ParseCSV(data)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		added, skipped, err := store.Import(entries)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d sets from %s", added, filename)
		if skipped > 0 {
			fmt.Printf("  %d already present or without id\n", skipped)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", `output file, "-" for stdout`)
	exportCmd.Flags().StringVarP(&exportExercise, "exercise", "e", "", "only export this exercise")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include days since date (YYYY-MM-DD, markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
