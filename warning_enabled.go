//go:build !pk11uri_nowarn

package pk11uri

// warningsEnabled reports whether the advisory warning scanner is compiled
// in. Build with the pk11uri_nowarn tag for production binaries that should
// not carry it; the const guard makes the scanner and the per-occurrence
// bookkeeping dead code in such builds.
const warningsEnabled = true
