package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillpath/internal/catalog"
	"skillpath/internal/config"
	dbpostgres "skillpath/internal/database/postgres"
	"skillpath/internal/database/seeder"
	"skillpath/internal/infrastructure/cache"
	"skillpath/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Mirror the careers file into Postgres",
	Long:  "Validates the careers file, replaces the careers table with its records in declaration order and flushes cached recommendations.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	env, err := loadToolEnv()
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	if !env.cfg.Database.Configured() {
		return fmt.Errorf("database is not configured: set %s", strings.Join(config.DatabaseRequiredEnv(), ", "))
	}

	src, err := catalog.NewFileSource(env.cfg.Catalog.Path)
	if err != nil {
		return err
	}
	cat, err := src.Load(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, env.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer func() { _ = db.Close() }()

	runner := seeder.Runner{
		Seeders: []seeder.Seeder{seeder.CareersSeeder{Catalog: cat}},
		Logger:  env.logger,
	}
	if err := runner.Run(ctx, db); err != nil {
		return err
	}

	flushed, err := flushRecommendations(ctx, env)
	if err != nil {
		env.logger.Warn("flush cached recommendations failed", zap.Error(err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d careers (version %s), flushed %d cached recommendations\n", cat.Len(), cat.Version, flushed)
	return nil
}

func flushRecommendations(ctx context.Context, env *toolEnv) (int, error) {
	rc := cache.NewRedis(env.cfg.Redis, env.logger)
	defer func() { _ = rc.Close() }()
	return rc.DeleteByPattern(ctx, usecase.RecommendationKeyPrefix+"*")
}
