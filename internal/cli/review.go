package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/critcli/crit/internal/anthropic"
	"github.com/critcli/crit/internal/config"
	"github.com/critcli/crit/internal/input"
	"github.com/critcli/crit/internal/notice"
	"github.com/critcli/crit/internal/output"
	"github.com/critcli/crit/internal/review"
)

var (
	flagLang   string
	flagNotes  string
	flagModel  string
	flagFormat string
	flagOut    string
	flagQuiet  bool
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagModel != "" {
		m["model"] = flagModel
	}
	return m
}

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Review a code file (or stdin when no file is given)",
	Long: "Review sends the code to the configured model with fixed review instructions " +
		"and prints the returned markdown. Status panels and the token caption go to stderr " +
		"so stdout stays clean for piping.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, config.ErrMissingCredential) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		var src input.Source
		if len(args) == 1 {
			src, err = input.Load(args[0])
		} else {
			src, err = input.FromReader("", os.Stdin)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		lang := flagLang
		if lang == "" {
			lang = input.DetectLanguage(src.Filename)
		}

		notices := notice.New(os.Stderr)
		if flagQuiet {
			notices = notice.Discard()
		}

		client := anthropic.New(cfg.APIKey, cfg.Model)
		svc := review.NewService(client, notices, log.Logger)

		result, err := svc.Review(cmd.Context(), review.ReviewRequest{
			Code:     src.Code,
			Filename: src.Filename,
			Language: lang,
			Notes:    flagNotes,
		})
		if err != nil {
			switch {
			case errors.Is(err, review.ErrInvalidInput):
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitUsageError
			case anthropic.IsAuthError(err):
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
			default:
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
			}
			return nil
		}

		if err := output.WriteResult(result, flagFormat, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if flagFormat == "markdown" && !flagQuiet {
			fmt.Fprintln(os.Stderr, output.Caption(result))
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&flagLang, "lang", "", "Language hint (default: detected from the file extension)")
	reviewCmd.Flags().StringVar(&flagNotes, "notes", "", "Free-text notes for the reviewer")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name (overrides ANTHROPIC_MODEL)")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "markdown", "Output format (markdown, json)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	reviewCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress status panels and the caption")
}
