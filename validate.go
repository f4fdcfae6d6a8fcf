package pk11uri

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ghettovoice/pk11uri/internal/grammar"
)

// checkStandard validates an occurrence of a standard attribute against its
// registry definition. The scan is fail-fast: the first violation aborts the
// whole parse.
func (p *parser) checkStandard(occ occurrence, def attrDef) *ParseError {
	if p.seen[occ.name] {
		return p.errAt(occ.tokStart, occ.tokEnd, ErrDuplicateAttribute,
			fmt.Sprintf("Duplicate standard attribute name: %q.", occ.name),
			"A PKCS#11 URI must not contain duplicate attributes of the same name; see RFC 7512, section 2.3.")
	}

	if def.component != occ.comp {
		if def.component == PathComponent {
			return p.errAt(occ.tokStart, occ.tokEnd, ErrComponentMismatch,
				"Naming collision with standard path component.",
				fmt.Sprintf("Move `%s` and its value to the PKCS#11 URI path.", occ.name))
		}
		return p.errAt(occ.tokStart, occ.tokEnd, ErrComponentMismatch,
			"Naming collision with standard query component.",
			fmt.Sprintf("Move `%s` and its value to the PKCS#11 URI query.", occ.name))
	}

	// Closed grammars replace the generic charset check.
	if def.enum != nil {
		if !slices.Contains(def.enum, occ.value) {
			return p.errValue(occ, ErrEnumViolation, def.violation, enumHelp(occ.value, def.enum))
		}
		return nil
	}
	if def.pattern != nil {
		if !def.pattern.MatchString(occ.value) {
			return p.errValue(occ, ErrValueGrammar, def.violation, def.help)
		}
		return nil
	}

	return p.checkValueCharset(occ, def.noSlash)
}

// checkVendor validates an occurrence whose name is not in the registry:
// either a vendor-specific attribute, or garbage.
func (p *parser) checkVendor(occ occurrence) *ParseError {
	if occ.name == "" {
		return p.errAt(occ.tokStart, occ.tokEnd, ErrMalformedAttribute,
			"Invalid component: Missing attribute name.",
			"The attribute name may not be blank; refer to RFC 7512 for the standard attributes.")
	}
	for i := 0; i < len(occ.name); i++ {
		if !grammar.IsVendorAttrNameChar(occ.name[i]) {
			return p.errAt(occ.tokStart, occ.tokStart+len(occ.name), ErrValueGrammar,
				"Invalid vendor-specific component name: expected `1*pk11-v-attr-nm-char`.",
				fmt.Sprintf("`%s` may contain only alphanumeric characters, '-' or '_'.", occ.name))
		}
	}
	// Vendor values follow the generic component grammar of wherever they
	// appear; there is no vendor-specific enumeration.
	return p.checkValueCharset(occ, occ.comp == PathComponent)
}

// checkValueCharset enforces the generic component-value rules: no empty
// spaces, no '#', and no '/' in path text values. The help suggestion
// percent-encodes every char outside the allowed set, so substituting it
// back into the input yields a URI that parses.
func (p *parser) checkValueCharset(occ occurrence, noSlash bool) *ParseError {
	unsafe := func(c byte) bool {
		return c == ' ' || c == '#' || (noSlash && c == '/')
	}

	if strings.IndexByte(occ.value, ' ') >= 0 {
		return p.errValue(occ, ErrValueGrammar,
			"Invalid component value: Appendix A of [RFC3986] specifies component values may not contain empty spaces.",
			replaceHelp(occ.value, unsafe))
	}
	if strings.IndexByte(occ.value, '#') >= 0 {
		return p.errValue(occ, ErrValueGrammar,
			"Invalid component value: The '#' delimiter must always be percent-encoded.",
			replaceHelp(occ.value, unsafe))
	}
	if noSlash && strings.IndexByte(occ.value, '/') >= 0 {
		return p.errValue(occ, ErrValueGrammar,
			"Invalid `pk11-pattr`: The general '/' delimiter must always be percent-encoded in a path component.",
			replaceHelp(occ.value, unsafe))
	}
	return nil
}

// errValue builds a ParseError spanning exactly the offending value substring.
func (p *parser) errValue(occ occurrence, kind Error, violation, help string) *ParseError {
	return p.errAt(occ.valStart, occ.valStart+len(occ.value), kind, violation, help)
}

func replaceHelp(value string, shouldEscape func(c byte) bool) string {
	return fmt.Sprintf("Replace `%s` with `%s`.", value, grammar.Escape(value, shouldEscape))
}

func enumHelp(value string, enum []string) string {
	return fmt.Sprintf("Replace `%s` with one of `%s` or `%s`.",
		value, strings.Join(enum[:len(enum)-1], "`, `"), enum[len(enum)-1])
}
