//go:build pk11uri_novalidate

package pk11uri

// Validation is compiled out. The caller-visible contract in this mode:
// the scheme check and component splitting still run, tokens lacking '='
// are skipped, standard attribute names assign last-wins, and vendor
// values accumulate; no grammar, enumeration, affinity or duplicate
// violations are reported.
const validationEnabled = false
