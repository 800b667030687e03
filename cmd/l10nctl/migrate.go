package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/l10n_addons/internal/platform/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required")
		}
		return app.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
