package cli

import (
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/config/db"
	"github.com/avc-dev/counselor-profiles/internal/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply directory schema migrations and print the schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseDSN == "" {
				return fmt.Errorf("migrate requires --dsn or $DATABASE_DSN")
			}

			adapter, err := db.NewConfig(cfg.DatabaseDSN).Connect(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer adapter.Close()

			migrator := migrations.NewMigrator(adapter.DB(), opts.logger())
			if err := migrator.RunUp(); err != nil {
				return err
			}

			version, dirty, err := migrator.Version()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}
