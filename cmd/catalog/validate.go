package main

import (
	"fmt"

	"skillpath/internal/catalog"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the careers file",
	Long:  "Loads the careers file through the same schema checks the service applies and reports the record count and content version.",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	env, err := loadToolEnv()
	if err != nil {
		return err
	}

	src, err := catalog.NewFileSource(env.cfg.Catalog.Path)
	if err != nil {
		return err
	}
	cat, err := src.Load(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d careers, version %s\n", src.Path(), cat.Len(), cat.Version)
	return nil
}
