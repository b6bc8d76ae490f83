package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shelf_inventory/db"
)

var (
	seedShelves int
	seedLevels  int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert shelves 1..N, each with levels 1..M",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedShelves < 1 || seedLevels < 1 {
			return fmt.Errorf("--shelves and --levels must be positive")
		}
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
			return err
		}

		res, err := db.NewRepo(conn).SeedShelves(cmd.Context(), seedShelves, seedLevels)
		if err != nil {
			log.Error("seed failed", zap.Error(err))
			return err
		}
		log.Info("shelves seeded",
			zap.Int64("shelves_created", res.Shelves),
			zap.Int64("levels_created", res.Levels),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d shelves, %d levels\n", res.Shelves, res.Levels)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedShelves, "shelves", 5, "number of shelves")
	seedCmd.Flags().IntVar(&seedLevels, "levels", 5, "levels per shelf")
	rootCmd.AddCommand(seedCmd)
}
