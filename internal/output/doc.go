// Package output writes review results to stdout or a file.
//
// Formats: markdown (the review body verbatim, the default) and json (the
// full ReviewResult for scripting). Caption renders the model and token
// counts for display alongside the markdown output.
package output
