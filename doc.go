// Package pk11uri parses and validates PKCS#11 URIs according to RFC 7512.
//
// # Overview
//
// A PKCS#11 URI identifies a cryptographic token, slot, library or object:
//
//	pkcs11:token=my-token;object=my-certificate;type=cert?pin-source=file:/etc/token_pin
//
// The URI consists of the literal `pkcs11:` scheme, a semicolon-delimited
// path component and an optional ampersand-delimited query component after
// '?'. [Parse] is the sole entry point: it either returns a fully validated
// [Mapping] or a single *[ParseError]; there is no partial success.
//
//	mapping, err := pk11uri.Parse("pkcs11:model=1.0;object=my-certificate;type=cert")
//	if err != nil {
//	    var perr *pk11uri.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Printf("%+v\n", perr) // caret-underlined diagnostic with a help suggestion
//	    }
//	    return err
//	}
//	if object, ok := mapping.Object(); ok {
//	    // use object ...
//	}
//
// Users of the package do not need to know which attributes belong to the
// path or to the query component, nor which names are standard versus
// vendor-defined: [Mapping] provides a named accessor per standard
// attribute and [Mapping.Vendor] for everything else.
//
// # Values
//
// Accessors return raw slices of the input: percent-encoded octets are
// passed through undecoded, matching the output of exploratory tools such
// as p11tool and pkcs11-tool. An attribute present with an explicit empty
// value (`serial=`) is reported as present with "", which is distinct from
// the attribute being absent.
//
// Vendor-specific attributes may legally repeat and therefore accumulate
// multiple values, in encounter order across both components:
//
//	mapping, _ := pk11uri.Parse("pkcs11:v-attr=val1?v-attr=val2&v-attr=val3")
//	values, _ := mapping.Vendor("v-attr") // ["val1", "val2", "val3"]
//
// # Errors
//
// Validation is fail-fast: the first violation found during a single
// left-to-right scan over path-then-query tokens aborts the parse. The
// returned *[ParseError] carries the violation span, a description and a
// concrete fix suggestion, and renders a caret-underlined display via
// [ParseError.Render] or the "%+v" verb:
//
//	pkcs11:object=Private key for Card Authentication;pin-value=123456
//	              ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^ Invalid component value: Appendix A of [RFC3986] specifies component values may not contain empty spaces.
//
//	help: Replace `Private key for Card Authentication` with `Private%20key%20for%20Card%20Authentication`.
//
// Every ParseError unwraps to one of the package's sentinel violations
// ([ErrSchemeMismatch], [ErrDuplicateAttribute], ...) for [errors.Is]
// matching.
//
// # Warnings
//
// RFC 7512 marks some rules as SHOULD/SHOULD NOT. Violating those never
// fails the parse; instead each successful parse is re-scanned and
// non-fatal [Warning] advisories are collected on the mapping and emitted
// through an [log/slog.Logger] (defaults to [log.Def]; see [WithLogger]).
//
// # Build tags
//
// Two independent switches, both on by default:
//
//   - pk11uri_novalidate strips the grammar, enumeration, affinity and
//     duplicate checks; callers accept the mapping unconditionally.
//   - pk11uri_nowarn compiles the advisory scanner out, intended for
//     optimized production builds.
//
// # Concurrency
//
// Parsing is purely synchronous and allocates no shared state beyond the
// process-wide attribute registry, which is built once on first use and is
// read-only thereafter; concurrent [Parse] calls need no synchronization.
package pk11uri
