// Package grammar implements the RFC 7512 attribute grammar: the character
// classes shared by the validator and the advisory scanner, and the
// percent-coding helpers.
package grammar

//go:generate errtrace -w .

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

var resAvailChars = map[byte]bool{
	'-':  true,
	'.':  true,
	'_':  true,
	'~':  true,
	':':  true,
	'[':  true,
	']':  true,
	'@':  true,
	'!':  true,
	'$':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	'=':  true,
}

// IsResAvailChar checks on pk11-res-avail rule.
func IsResAvailChar(c byte) bool {
	return resAvailChars[c]
}

// IsPathSafeChar reports whether c may appear in a pk11-pattr value
// without percent-encoding (pk11-pchar sans pct-encoded).
func IsPathSafeChar(c byte) bool {
	return c == '&' || resAvailChars[c] || IsAlphanumChar(c)
}

var queryExtraChars = map[byte]bool{
	'/': true,
	'?': true,
	'|': true,
}

// IsQuerySafeChar reports whether c may appear in a pk11-qattr value
// without percent-encoding (pk11-qchar sans pct-encoded).
func IsQuerySafeChar(c byte) bool {
	return queryExtraChars[c] || resAvailChars[c] || IsAlphanumChar(c)
}

// IsVendorAttrNameChar checks on pk11-v-attr-nm-char rule.
func IsVendorAttrNameChar(c byte) bool {
	return c == '-' || c == '_' || IsAlphanumChar(c)
}
