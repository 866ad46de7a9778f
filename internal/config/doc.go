// Package config resolves the crit configuration from the process
// environment.
//
// Precedence (highest to lowest):
//  1. CLI flag overrides
//  2. Environment variables (ANTHROPIC_API_KEY, ANTHROPIC_MODEL)
//  3. Built-in defaults
//
// A .env file in the working directory is loaded before the environment is
// read. The credential is required: [Load] fails with [ErrMissingCredential]
// before any network call is possible. Configuration is resolved exactly once
// per process and never re-read.
package config
