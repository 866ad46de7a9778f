package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/critcli/crit/internal/anthropic"
	"github.com/critcli/crit/internal/config"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Model management",
}

var knownModels = []string{
	"claude-sonnet-4-5-20250929",
	"claude-opus-4-6",
	"claude-haiku-4-5",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known model identifiers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range knownModels {
			marker := " "
			if m == config.DefaultModel {
				marker = "*"
			}
			fmt.Fprintf(os.Stdout, "%s %s\n", marker, m)
		}
	},
}

var modelsDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the configured credential with a minimal call",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		fmt.Fprintf(os.Stdout, "Checking %s...\n", cfg.Model)

		client := anthropic.New(cfg.APIKey, cfg.Model)
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		_, err = client.Complete(ctx, anthropic.CompletionRequest{
			System:    "Respond with exactly: ok",
			Prompt:    "ping",
			MaxTokens: 10,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			if anthropic.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is configured and responding\n", cfg.Model)
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDoctorCmd)
	modelsDoctorCmd.Flags().StringVar(&flagModel, "model", "", "Model to check")
}
