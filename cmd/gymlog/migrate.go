package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/gymlog/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert the database schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(db.MigrateUp), string(db.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := db.MigrateUp
		if len(args) == 1 {
			direction = db.MigrateDirection(args[0])
		}

		cfg, err := loadConfig(cmd, "gymlog-migrate")
		if err != nil {
			return err
		}

		if err := db.Migrate(dbParams(cfg, os.Getenv("GYMLOG_PG_PASS")), direction); err != nil {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}

		log.Infof("migrate %s done", direction)
		return nil
	},
}
