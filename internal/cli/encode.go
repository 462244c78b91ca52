package cli

import (
	"encoding/json"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/avc-dev/counselor-profiles/internal/service"
	"github.com/spf13/cobra"
)

func newEncodeCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "encode <profile-id>...",
		Short: "Compute profile slugs for counselor ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			ids := make([]model.CounselorID, len(args))
			for i, arg := range args {
				ids[i] = model.CounselorID(arg)
			}

			codec := service.NewSlugCodec(cfg.SecretKey.Value())
			pairs, err := service.NewBatchSlugger(codec, cfg.Slug.BatchWorkers).Slugify(cmd.Context(), ids)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(pairs)
			}

			for _, pair := range pairs {
				fmt.Fprintf(out, "%s\t%s\n", pair.ID, pair.Slug)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON array of {profile_id, slug}")

	return cmd
}
