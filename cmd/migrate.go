package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Manage the database schema of the Podcast API.

Available subcommands:
  up      - Create or update every table and index
  status  - Show which tables exist`,
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply the database schema",
			Long: `Create missing tables, columns and indexes.

The schema is derived from the models; running it again is a no-op.`,
			RunE: runMigrateUp,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			Long:  `Display the current status of each table the application uses.`,
			RunE:  runMigrateStatus,
		},
	)
	return migrateCmd
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied schema for %d tables to %s\n", len(models.All()), appConfig.Database.Path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	statuses, err := tableStatus(db.DB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	pending := 0
	for _, st := range statuses {
		state := "applied"
		if !st.exists {
			state = "pending"
			pending++
		}
		fmt.Fprintf(out, "  %-20s %s\n", st.table, state)
	}
	fmt.Fprintln(out, strings.Repeat("=", 50))
	if pending > 0 {
		fmt.Fprintf(out, "%d table(s) pending, run 'migrate up'\n", pending)
	} else {
		fmt.Fprintln(out, "Schema is up to date")
	}
	return nil
}

type tableState struct {
	table  string
	exists bool
}

func tableStatus(db *gorm.DB) ([]tableState, error) {
	all := models.All()
	statuses := make([]tableState, 0, len(all))
	for _, m := range all {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parsing model: %w", err)
		}
		statuses = append(statuses, tableState{
			table:  stmt.Schema.Table,
			exists: db.Migrator().HasTable(m),
		})
	}
	return statuses, nil
}
