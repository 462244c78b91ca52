package cli

import (
	"fmt"
	"time"

	"github.com/avc-dev/counselor-profiles/internal/service"
	"github.com/spf13/cobra"
)

func newIssueTokenCmd(opts *options) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Issue an admin JWT for the profile-links endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			token, err := service.NewAuthService(cfg.AdminJWTSecret).IssueAdminToken(subject, ttl)
			if err != nil {
				return fmt.Errorf("issue token (is ADMIN_JWT_SECRET set?): %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "slugctl", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")

	return cmd
}
