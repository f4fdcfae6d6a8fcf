//go:build !pk11uri_novalidate

package pk11uri

// validationEnabled reports whether the RFC 7512 grammar, enumeration and
// duplicate-name checks are compiled in. Build with the pk11uri_novalidate
// tag to strip them; the const guard lets the compiler eliminate the
// validator entirely in such builds.
const validationEnabled = true
