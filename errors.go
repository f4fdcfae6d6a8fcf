package pk11uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Error is a string type that implements the error interface.
type Error string

func (e Error) Error() string { return string(e) }

// Violation taxonomy. Every [ParseError] unwraps to exactly one of these
// sentinels, so callers can branch with [errors.Is].
const (
	// ErrSchemeMismatch is reported when the input does not start with the `pkcs11:` scheme.
	ErrSchemeMismatch Error = "scheme mismatch"
	// ErrMalformedAttribute is reported for tokens without a `name=value` form
	// or produced by a misplaced delimiter.
	ErrMalformedAttribute Error = "malformed attribute"
	// ErrValueGrammar is reported when an attribute name or value fails its charset rule.
	ErrValueGrammar Error = "invalid attribute value"
	// ErrEnumViolation is reported when a closed-set attribute carries a non-member value.
	ErrEnumViolation Error = "value outside allowed set"
	// ErrDuplicateAttribute is reported when a standard attribute name repeats
	// anywhere across the path and query components.
	ErrDuplicateAttribute Error = "duplicate attribute name"
	// ErrComponentMismatch is reported when a standard attribute appears in the
	// wrong URI component.
	ErrComponentMismatch Error = "attribute in wrong component"
)

// ParseError describes the first RFC 7512 violation found in a PKCS#11 URI.
// Parsing is fail-fast: a single call reports at most one violation and no
// partial [Mapping] accompanies it.
//
// URI holds a tidied copy of the input (newline and tab formatting stripped)
// that Start and End offsets refer to, so the error renders on its own
// without the original input.
type ParseError struct {
	// URI is the tidied uri identified as violating RFC 7512.
	URI string
	// Start and End are the byte offsets of the violation span within URI.
	Start, End int
	// Kind is the taxonomy sentinel of the violation.
	Kind Error
	// Violation is the ABNF or RFC 7512 text exhibiting the issue.
	Violation string
	// Help is a human-friendly suggestion of how to resolve the issue.
	Help string
}

// Error returns a one-line description of the violation.
func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("pkcs11 uri error at %d:%d: %s", e.Start, e.End, e.Violation)
}

// Unwrap returns the taxonomy sentinel, making the error matchable
// with [errors.Is] against [ErrSchemeMismatch] and friends.
func (e *ParseError) Unwrap() error { return e.Kind }

// Render returns the full diagnostic display: the offending URI line, a
// caret underline beneath the violation span, the violation text and a
// blank-line-separated help suggestion.
//
//	pkcs11:object=Private key for Card Authentication;pin-value=123456
//	              ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^ Invalid component value: ...
//
//	help: Replace `Private key for Card Authentication` with `Private%20key%20for%20Card%20Authentication`.
func (e *ParseError) Render() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(e.URI)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", e.Start))
	sb.WriteString(strings.Repeat("^", max(e.End-e.Start, 1)))
	sb.WriteByte(' ')
	sb.WriteString(e.Violation)
	sb.WriteString("\n\nhelp: ")
	sb.WriteString(e.Help)
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the error.
// The "%+v" and "%+s" verbs produce the [ParseError.Render] display.
func (e *ParseError) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if f.Flag('+') {
			io.WriteString(f, e.Render()) //nolint:errcheck
			return
		}
		fmt.Fprint(f, e.Error())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(e.Error()))
		return
	default:
		type hideMethods ParseError
		type ParseError hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*ParseError)(e))
		return
	}
}
