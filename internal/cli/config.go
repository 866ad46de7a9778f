package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/critcli/crit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect crit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			if errors.Is(err, config.ErrMissingCredential) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
				return nil
			}
			return err
		}

		fmt.Fprintf(os.Stdout, "credential: %s\n", maskKey(cfg.APIKey))
		fmt.Fprintf(os.Stdout, "model:      %s\n", cfg.Model)
		return nil
	},
}

// maskKey keeps just enough of the credential to recognize it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:6] + "..." + key[len(key)-4:]
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
