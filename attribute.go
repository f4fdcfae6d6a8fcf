package pk11uri

import (
	"regexp"
	"sync"
)

// Component identifies the URI component an attribute occurred in.
type Component int

const (
	// PathComponent is the semicolon-delimited attribute list between the
	// scheme and an optional '?'.
	PathComponent Component = iota
	// QueryComponent is the ampersand-delimited attribute list after '?'.
	QueryComponent
)

// String returns the component name used in diagnostics.
func (c Component) String() string {
	if c == QueryComponent {
		return "query"
	}
	return "path"
}

func (c Component) delimiter() byte {
	if c == QueryComponent {
		return '&'
	}
	return ';'
}

// attrDef describes one standard RFC 7512 attribute: the component it must
// appear in and the grammar its value is held to. All RFC-specific attribute
// knowledge lives in the registry table; the validator stays generic.
type attrDef struct {
	name      string
	component Component
	// enum is the closed set of allowed values, nil for open grammars.
	enum []string
	// pattern constrains the whole value when set; violation and help
	// carry the fixed diagnostic texts for enum/pattern failures.
	pattern   *regexp.Regexp
	violation string
	help      string
	// noSlash marks values where the '/' general delimiter must stay
	// percent-encoded (path text values).
	noSlash bool
	// wantPctEncoded marks values that SHOULD be wholly percent-encoded
	// (advisory only).
	wantPctEncoded bool
	// skipCharScan excludes the value from the per-char SHOULD-encode
	// advisory scan: closed grammars constrain the charset already.
	skipCharScan bool
}

// registry returns the process-wide table of standard attributes, built
// lazily on first use and read-only thereafter, so concurrent parses may
// consult it without synchronization.
var registry = sync.OnceValue(func() map[string]attrDef {
	libVersionPattern := regexp.MustCompile(`^\d+(\.\d+)?$`)
	slotIDPattern := regexp.MustCompile(`^\d+$`)

	defs := []attrDef{
		// pk11-pattr:
		{name: "token", component: PathComponent, noSlash: true},
		{name: "manufacturer", component: PathComponent, noSlash: true},
		{name: "serial", component: PathComponent, noSlash: true},
		{name: "model", component: PathComponent, noSlash: true},
		{name: "library-manufacturer", component: PathComponent, noSlash: true},
		{
			name:      "library-version",
			component: PathComponent,
			pattern:   libVersionPattern,
			violation: "Invalid `pk11-pattr`: `pk11-lib-ver` = `\"library-version\" \"=\" 1*DIGIT [ \".\" 1*DIGIT ]`.",
			help: "The `library-version` attribute represents the major and minor version decimal " +
				"number of the library and its format is `M.N`. The major version is required.",
			skipCharScan: true,
		},
		{name: "library-description", component: PathComponent, noSlash: true},
		{name: "object", component: PathComponent, noSlash: true},
		{
			name:         "type",
			component:    PathComponent,
			enum:         []string{"public", "private", "cert", "secret-key", "data"},
			violation:    "Invalid `pk11-pattr`: `pk11-type` = `\"type\" \"=\" ( \"public\" / \"private\" / \"cert\" / \"secret-key\" / \"data\" )`.",
			skipCharScan: true,
		},
		{name: "id", component: PathComponent, noSlash: true, wantPctEncoded: true, skipCharScan: true},
		{name: "slot-description", component: PathComponent, noSlash: true},
		{name: "slot-manufacturer", component: PathComponent, noSlash: true},
		{
			name:         "slot-id",
			component:    PathComponent,
			pattern:      slotIDPattern,
			violation:    "Invalid `pk11-pattr`: `pk11-slot-id` = `\"slot-id\" \"=\" 1*DIGIT`.",
			help:         "The `slot-id` value may only be numeric.",
			skipCharScan: true,
		},
		// pk11-qattr:
		{name: "pin-source", component: QueryComponent},
		{name: "pin-value", component: QueryComponent},
		{name: "module-name", component: QueryComponent},
		{name: "module-path", component: QueryComponent},
	}

	m := make(map[string]attrDef, len(defs))
	for _, d := range defs {
		m[d.name] = d
	}
	return m
})
