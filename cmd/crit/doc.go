// Crit is a CLI that reviews a single code file or snippet with a hosted
// model and renders the returned markdown review.
//
// Usage:
//
//	crit review main.go                 # review a file
//	cat snippet.py | crit review        # review stdin
//	crit review main.go --notes "hot path, focus on allocations"
//	crit review main.go --format json   # machine-readable result
//	crit models list                    # known model identifiers
//	crit config show                    # resolved configuration
//
// Configuration comes from the environment (or a .env file):
// ANTHROPIC_API_KEY is required, ANTHROPIC_MODEL optionally overrides the
// default model.
package main
