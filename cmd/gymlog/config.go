// ABOUTME: CLI commands for viewing and changing gymlog settings.
// ABOUTME: Settings live in $XDG_CONFIG_HOME/gymlog/config.json.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change settings",
	Long: `View or change gymlog settings.

KEYS:

  data_dir        Directory holding workouts.csv (supports ~)
  default_unit    Weight unit when --unit is not given: kg or lb
  default_weeks   Chart window when --weeks is not given (4-52)

EXAMPLES:

  gymlog config show
  gymlog config set default_unit lb
  gymlog config set data_dir ~/Dropbox/gym`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Println(faint.Sprint(config.GetConfigPath()))
		fmt.Printf("  data_dir       %s\n", cfg.GetDataDir())
		fmt.Printf("  table          %s\n", cfg.GetTablePath())
		fmt.Printf("  default_unit   %s\n", cfg.GetDefaultUnit())
		fmt.Printf("  default_weeks  %d\n", cfg.GetDefaultWeeks())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s = %s", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
