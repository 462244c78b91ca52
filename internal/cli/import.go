package cli

import (
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/config/db"
	"github.com/avc-dev/counselor-profiles/internal/store"
	"github.com/spf13/cobra"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <counselors.json>",
		Short: "Load counselors from a JSON file into the PostgreSQL directory",
		Long:  "Inserts every entry of the JSON file in one transaction. The file format is the one accepted by FILE_STORAGE_PATH.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseDSN == "" {
				return fmt.Errorf("import requires --dsn or $DATABASE_DSN")
			}

			counselors, err := store.NewFileStorage(args[0]).Load()
			if err != nil {
				return err
			}

			adapter, err := db.NewConfig(cfg.DatabaseDSN).Connect(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer adapter.Close()

			if err := store.NewDatabaseStore(adapter.Pool).InsertCounselors(cmd.Context(), counselors); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d profiles\n", len(counselors))
			return nil
		},
	}
}
