//go:build pk11uri_nowarn

package pk11uri

// The warning scanner is compiled out: no occurrences are retained after
// the scan and Mapping.Warnings always returns nil.
const warningsEnabled = false
