// Command catalog validates, seeds and queries the SkillPath career catalog.
package main

import (
	"fmt"
	"os"

	"skillpath/internal/config"
	"skillpath/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "SkillPath career catalog tooling",
	Long:          "Validate the careers file, mirror it into Postgres, flush cached recommendations and run one-off matches.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var catalogFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", "", "Path to careers JSON file (default: CATALOG_PATH)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type toolEnv struct {
	cfg    config.Config
	logger *zap.Logger
}

func loadToolEnv() (*toolEnv, error) {
	cfg, err := config.LoadTooling()
	if err != nil {
		return nil, err
	}
	if catalogFile != "" {
		cfg.Catalog.Path = catalogFile
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, err
	}
	return &toolEnv{cfg: cfg, logger: log}, nil
}
