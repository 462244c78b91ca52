package cli

import (
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/service"
	"github.com/spf13/cobra"
)

// ErrWeakKey возвращается check-key, если ключ не прошел проверку
var ErrWeakKey = errors.New("slug secret key is not suitable for production")

func newCheckKeyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check-key",
		Short: "Validate the slug secret key",
		Long:  "Reports whether the slug secret key is explicitly set and at least 32 characters long. Exits non-zero otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key: %s\n", cfg.SecretKey)
			fmt.Fprintf(out, "length: %d (minimum %d)\n", cfg.SecretKey.Len(), config.MinSecretKeyLength)
			fmt.Fprintf(out, "default: %t\n", !cfg.SecretKeyConfigured || cfg.SecretKey.IsDefault())

			if !service.ValidateKey(cfg, opts.logger()) {
				fmt.Fprintln(out, "status: INSECURE")
				return ErrWeakKey
			}

			fmt.Fprintln(out, "status: OK")
			return nil
		},
	}
}
