package cli

import (
	"encoding/json"

	"github.com/avc-dev/counselor-profiles/internal/service"
	"github.com/avc-dev/counselor-profiles/internal/usecase"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print profile links for every counselor in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if limit > 0 {
				cfg.Slug.BatchLimit = limit
			}

			directory, closeDirectory, err := openDirectory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeDirectory()

			codec := service.NewSlugCodec(cfg.SecretKey.Value())
			resolver := service.NewDirectoryResolver(codec, directory, cfg.Slug)
			profiles := usecase.NewProfileUsecase(directory, resolver, cfg, opts.logger())

			links, err := profiles.ListProfileLinks(cmd.Context())
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(links)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of counselors (default: $BATCH_SLUG_LIMIT)")

	return cmd
}
