package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/resume-site/internal/repository"
)

var migrate bool

var dbhealthCmd = &cobra.Command{
	Use:   "dbhealth",
	Short: "Ping the configured store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Store.DSN == "" {
			return fmt.Errorf("DB_URL is required")
		}

		storeCfg := cfg.Store
		storeCfg.AutoMigrate = migrate
		repo, err := repository.Open(cmd.Context(), storeCfg, logger)
		if err != nil {
			return err
		}
		defer repo.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := repo.Ping(ctx); err != nil {
			return fmt.Errorf("store health: FAIL (%w)", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "store health: OK (%s)\n", cfg.Store.Driver)
		if migrate {
			fmt.Fprintf(cmd.OutOrStdout(), "table %q ready\n", cfg.Store.Table)
		}
		return nil
	},
}

func init() {
	dbhealthCmd.Flags().BoolVar(&migrate, "migrate", false, "create the resumes table or collection if missing")
}
