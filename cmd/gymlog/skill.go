// ABOUTME: Install Claude Code skill for gymlog
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"bufio"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the gymlog skill for Claude Code.

This copies the skill definition to ~/.claude/skills/gymlog/
so Claude Code can use gymlog commands contextually.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(home)
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}

// skillPath returns where the skill file is installed under home.
func skillPath(home string) string {
	return filepath.Join(home, ".claude", "skills", "gymlog", "SKILL.md")
}

func installSkill(home string) error {
	path := skillPath(home)

	fmt.Println("This will install the gymlog skill, enabling Claude Code to:")
	fmt.Println()
	fmt.Println("  • Log sets as you train")
	fmt.Println("  • Summarize today's session")
	fmt.Println("  • Chart weekly volume")
	fmt.Println()
	fmt.Println("Destination:")
	fmt.Printf("  %s\n", path)
	fmt.Println()

	if _, err := os.Stat(path); err == nil {
		fmt.Println("Note: A skill file already exists and will be overwritten.")
		fmt.Println()
	}

	if !skillSkipConfirm {
		fmt.Print("Install the gymlog skill? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Installation canceled.")
			return nil
		}
		fmt.Println()
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	fmt.Println("✓ Installed gymlog skill successfully!")
	fmt.Println()
	fmt.Println("Try asking Claude: \"Log 3 sets of 5 squats at 100kg\" or \"How much volume did I do this week?\"")
	return nil
}
