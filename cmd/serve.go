package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shelf_inventory/app"
	"shelf_inventory/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and serve the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	application, err := app.New(cfg, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		return err
	}
	defer application.Close()

	routes.RegisterRoutes(application.Router, application)

	log.Info("listening", zap.String("port", cfg.Port))
	return application.Router.Run(":" + cfg.Port)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
