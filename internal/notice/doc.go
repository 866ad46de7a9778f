// Package notice renders human-readable status panels around long-running
// operations. Panels are observability only and never part of the data
// contract; callers that want silence use [Discard].
package notice
