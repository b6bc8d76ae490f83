package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shelf_inventory/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the items/shelves/levels schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		conn, err := db.Connect(cfg.DB)
		if err != nil {
			return err
		}
		if sqlDB, err := conn.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := db.Migrate(conn); err != nil {
			log.Error("migrate failed", zap.Error(err))
			return err
		}
		log.Info("schema migrated", zap.String("driver", cfg.DB.Driver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
