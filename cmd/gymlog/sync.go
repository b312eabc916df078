// ABOUTME: CLI commands for Charm-based backup of the workout table.
// ABOUTME: Supports link, unlink, status, push, pull, and wipe operations.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/charm"
	"github.com/harperreed/gymlog/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncYes bool

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Back up the workout table to Charm Cloud",
	Long: `Back up the workout table using Charm Cloud.

The whole CSV table is stored as one snapshot, E2E encrypted with your
SSH key before upload. The server never sees your unencrypted data.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     gymlog sync link

  2. Upload the current table:
     gymlog sync push

  3. On another device, link with the same Charm account and restore:
     gymlog sync pull

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show account info and the latest snapshot
  push        Upload the local table as the latest snapshot
  pull        Replace the local table with the latest snapshot (destructive)
  wipe        Delete the cloud snapshot and local Charm data (destructive)`,
}

// openCharm initializes the Charm client for a single sync command.
func openCharm() (*charm.Client, error) {
	client, err := charm.InitClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize charm client: %w", err)
	}
	return client, nil
}

// confirm asks a yes/no question unless --yes was given.
func confirm(prompt string) bool {
	if syncYes {
		return true
	}
	fmt.Print(prompt + " [y/N]: ")
	var answer string
	_, _ = fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")

		client, err := openCharm()
		if err != nil {
			color.Yellow("⚠ %v", err)
			return nil
		}
		defer func() { _ = client.Close() }()

		if err := client.Sync(); err != nil {
			color.Yellow("⚠ Initial sync failed: %v", err)
		} else {
			color.Green("✓ Initial sync complete")
		}
		fmt.Println("Run 'gymlog sync push' to upload your table.")
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not touch your local workout table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local workout table is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		fmt.Println("Table:", store.Path())
		fmt.Printf("  Sets: %d\n\n", len(entries))

		client, err := openCharm()
		if err != nil {
			color.Yellow("Charm client not initialized: %v", err)
			fmt.Println("\nRun 'gymlog sync link' to connect to Charm.")
			return nil
		}
		defer func() { _ = client.Close() }()

		id, err := client.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'gymlog sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		color.Green("✓ Connected to Charm")
		if client.IsReadOnly() {
			color.Yellow("  Read-only: another gymlog process holds the Charm database")
		}

		snap, err := client.Pull()
		if err != nil {
			fmt.Println("  No snapshot pushed yet.")
			return nil
		}
		fmt.Printf("  Snapshot: %d sets, pushed %s\n", snap.Rows, snap.PushedAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local table",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		data, err := storage.ExportCSV(entries)
		if err != nil {
			return fmt.Errorf("failed to encode table: %w", err)
		}

		client, err := openCharm()
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		snap, err := client.Push(data, len(entries))
		if err != nil {
			return fmt.Errorf("push failed: %w", err)
		}
		logger.Debug("pushed snapshot", zap.Int("rows", snap.Rows), zap.Int("bytes", len(data)))

		color.Green("✓ Pushed %d sets to Charm", snap.Rows)
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace the local table with the latest snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := openCharm()
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		snap, err := client.Pull()
		if err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}

		entries, err := storage.ReadCSV(bytes.NewReader(snap.CSV), logger)
		if err != nil {
			return fmt.Errorf("snapshot is not a valid table: %w", err)
		}

		fmt.Printf("Snapshot from %s has %d sets.\n", snap.PushedAt.Local().Format("2006-01-02 15:04"), len(entries))
		if !confirm("This will REPLACE the local table. Continue?") {
			fmt.Println("Canceled.")
			return nil
		}

		if err := store.Replace(entries); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}

		color.Green("✓ Restored %d sets from Charm", len(entries))
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete the cloud snapshot and local Charm data",
	Long: `Delete the cloud snapshot and local Charm data.

The local workout table is not touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("This will PERMANENTLY DELETE the cloud snapshot. Continue?") {
			fmt.Println("Canceled.")
			return nil
		}

		result, err := kv.Wipe("gymlog")
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Snapshot wiped successfully")
		fmt.Printf("  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

func init() {
	syncCmd.PersistentFlags().BoolVarP(&syncYes, "yes", "y", false, "skip confirmation prompts")

	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}
