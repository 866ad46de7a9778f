// Package input loads source code for review from files or readers.
//
// Bytes that are not valid UTF-8 are decoded as Latin-1 rather than rejected.
// DetectLanguage infers a language hint from the filename extension.
package input
