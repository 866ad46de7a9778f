// Package review contains the core types and dispatcher for single-snippet
// code review.
//
// It defines ReviewRequest and ReviewResult, assembles the deterministic user
// prompt and the fixed system instructions, and issues exactly one blocking
// call to a completion service per request. The error taxonomy is explicit:
// ErrInvalidInput for empty code (rejected before any network call) and
// ServiceError for any failure from the remote service, with the underlying
// message passed through verbatim and no retry.
//
// A ReviewResult exists only for a fully successful call; there is no
// partial or degraded state.
package review
