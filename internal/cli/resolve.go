package cli

import (
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/avc-dev/counselor-profiles/internal/service"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <slug>",
		Short: "Find the counselor id behind a profile slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			directory, closeDirectory, err := openDirectory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeDirectory()

			codec := service.NewSlugCodec(cfg.SecretKey.Value())
			resolver := service.NewDirectoryResolver(codec, directory, cfg.Slug)

			id, err := resolver.Resolve(cmd.Context(), model.Slug(args[0]))
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
