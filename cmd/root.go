package cmd

import (
	"fmt"
	"os"

	"shelf_inventory/config"
	"shelf_inventory/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "shelf_inventory",
	Short: "Shelf inventory backend (items, search, xlsx import/export)",
	// 不带子命令时直接启动服务
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(config.LoadEnv)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup 读取配置并构建 logger，各子命令共用
func setup() (config.Config, *zap.Logger, error) {
	cfg := config.Load()
	log, err := logger.New(cfg.Log)
	if err != nil {
		return cfg, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}
