// Package cli wires together the Cobra command tree for the crit binary.
//
// It defines the root command and all subcommands (review, models, config,
// version), binds flags, resolves configuration, constructs the completion
// client and review service once per invocation, and maps the error taxonomy
// to deterministic exit codes: 0 success, 2 usage/invalid input, 3
// credential/auth failure, 4 runtime failure.
package cli
