package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"airscore-backend/internal/shared/storage/db"
)

//nolint:gochecknoglobals // Cobra boilerplate
var migrateDown bool

//nolint:gochecknoglobals // Cobra boilerplate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply (or roll back) the catalog schema migrations",
	RunE:  runMigrate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")
}

func runMigrate(cmd *cobra.Command, args []string) (err error) {
	ctx := commandContext()
	sqlDB, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if migrateDown {
		err = db.RollbackMigration(ctx, sqlDB)
	} else {
		err = db.RunMigrations(ctx, sqlDB)
	}
	if err != nil {
		err = errors.Wrap(err, "migration failed")
		return err
	}

	version, err := db.MigrationVersion(ctx, sqlDB)
	if err != nil {
		err = errors.Wrap(err, "failed to read migration version")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
	return err
}
