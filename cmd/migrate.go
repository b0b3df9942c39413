package cmd

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/killallgit/podcastr/internal/database"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the persistent page cache.

The sqlite page cache keeps generated pages across restarts. These
subcommands create, drop and inspect its tables.

Available subcommands:
  up      - Create or update the page cache tables
  down    - Drop the page cache tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

Creates the page cache tables if they do not exist and adds any missing
columns or indexes.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the tables
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the page cache tables",
	Long: `Rollback the applied migrations by dropping the page cache tables.

Every cached page is lost; pages are regenerated on their next request.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of database migrations.

Lists every table the service owns and whether it exists.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("database", "", "database path (overrides database.path)")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
	migrateDownCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

func openMigrationDB(cmd *cobra.Command) (*database.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	path := cfg.Database.Path
	if override, _ := cmd.Flags().GetString("database"); override != "" {
		path = override
	}

	return database.Initialize(path, cfg.Database.Verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	pending := missingTables(db.TableStatus())

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintf(out, "Would create: %s\n", listOrNone(pending))
		return nil
	}

	if err := db.Migrate(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Migrations applied (created: %s)\n", listOrNone(pending))
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	existing := existingTables(db.TableStatus())

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintf(out, "Would drop: %s\n", listOrNone(existing))
		return nil
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Fprintf(out, "Drop %s? [y/N]: ", listOrNone(existing))
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(out, "Aborted")
			return nil
		}
	}

	if err := db.Rollback(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Migrations rolled back (dropped: %s)\n", listOrNone(existing))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	status := db.TableStatus()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Migration Status")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	for _, table := range sortedKeys(status) {
		state := "pending"
		if status[table] {
			state = "applied"
		}
		fmt.Fprintf(out, "%-28s %s\n", table, state)
	}
	fmt.Fprintln(out, strings.Repeat("-", 40))

	return nil
}

func missingTables(status map[string]bool) []string {
	var tables []string
	for _, table := range sortedKeys(status) {
		if !status[table] {
			tables = append(tables, table)
		}
	}
	return tables
}

func existingTables(status map[string]bool) []string {
	var tables []string
	for _, table := range sortedKeys(status) {
		if status[table] {
			tables = append(tables, table)
		}
	}
	return tables
}

func sortedKeys(status map[string]bool) []string {
	keys := make([]string, 0, len(status))
	for k := range status {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func listOrNone(tables []string) string {
	if len(tables) == 0 {
		return "none"
	}
	return strings.Join(tables, ", ")
}
