// Package anthropic implements a minimal client for the Anthropic messages
// API.
//
// The client sends one blocking POST per Complete call with the system
// instructions and a single user-role message, and maps the response to the
// first text content block plus usage counters (input/output tokens) and the
// resolved model identifier.
//
// Credential rejections (401/403) surface as [AuthError], detectable via
// [IsAuthError]; every other failure is a plain error carrying the service's
// message. There is deliberately no retry or backoff. The HTTP client is held
// in a field so that tests can redirect calls to local httptest servers
// without making live API requests.
package anthropic
