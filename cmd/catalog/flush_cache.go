package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flushCacheCmd = &cobra.Command{
	Use:   "flush-cache",
	Short: "Delete cached recommendations from Redis",
	RunE:  runFlushCache,
}

func init() {
	rootCmd.AddCommand(flushCacheCmd)
}

func runFlushCache(cmd *cobra.Command, _ []string) error {
	env, err := loadToolEnv()
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	n, err := flushRecommendations(ctx, env)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "flushed %d cached recommendations\n", n)
	return nil
}
