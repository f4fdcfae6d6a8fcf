package pk11uri

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ghettovoice/pk11uri/internal/grammar"
)

// Warning is a non-fatal RFC 7512 SHOULD/SHOULD-NOT advisory raised for an
// otherwise valid PKCS#11 URI. Warnings never affect the parse outcome.
type Warning struct {
	// Attr is the name of the attribute the advisory refers to,
	// or "" for URI-level advisories.
	Attr string
	// Component is the component the attribute occurred in.
	Component Component
	// Offset is the byte offset of the offending char within the
	// attribute value, or -1 when not applicable.
	Offset int
	// Char is the offending char, or 0 when not applicable.
	Char byte
	// Text is the advisory message.
	Text string
}

// String returns the advisory line, beginning with the fixed
// "pkcs11 warning:" marker.
func (w Warning) String() string { return "pkcs11 warning: " + w.Text }

// scanWarnings re-scans the accepted occurrences for SHOULD/SHOULD-NOT
// compliance. It runs only after a fully successful parse and is compiled
// out together with its callers under the pk11uri_nowarn tag.
func (p *parser) scanWarnings() []Warning {
	var ws []Warning
	for _, occ := range p.occs {
		ws = p.scanOccurrence(ws, occ)
	}

	// "Attribute "module-name" is preferred to "module-path" due to its
	//  system-independent nature ... such use SHOULD be avoided."
	if _, ok := p.m.std["module-name"]; ok {
		if _, ok := p.m.std["module-path"]; ok {
			ws = append(ws, Warning{Component: QueryComponent, Offset: -1,
				Text: "using both `module-name` and `module-path` SHOULD be avoided. " +
					"Attribute `module-name` is preferred due to its system-independent nature."})
		}
	}
	// "If a URI contains both "pin-source" and "pin-value" query attributes,
	//  the URI SHOULD be refused as invalid."
	if _, ok := p.m.std["pin-source"]; ok {
		if _, ok := p.m.std["pin-value"]; ok {
			ws = append(ws, Warning{Component: QueryComponent, Offset: -1,
				Text: `a PKCS#11 URI containing both "pin-source" and "pin-value" query attributes SHOULD be refused as invalid.`})
		}
	}
	return ws
}

func (p *parser) scanOccurrence(ws []Warning, occ occurrence) []Warning {
	if occ.vendor && strings.HasPrefix(occ.name, "x-") {
		ws = append(ws, Warning{Attr: occ.name, Component: occ.comp, Offset: -1,
			Text: fmt.Sprintf("per RFC 7512, the previously used convention of starting vendor attributes "+
				"with an \"x-\" prefix is now deprecated. Identified: `%s`.", occ.name)})
	}

	def, standard := registry()[occ.name]
	if standard && def.wantPctEncoded {
		if !grammar.IsFullyPctEncoded(occ.value) {
			ws = append(ws, Warning{Attr: occ.name, Component: occ.comp, Offset: -1,
				Text: fmt.Sprintf("the whole value of the `%s` attribute SHOULD be percent-encoded: %s.",
					occ.name, occ.token())})
		}
		return ws
	}
	if standard && def.skipCharScan {
		return ws
	}

	if occ.name == "module-name" &&
		(strings.HasPrefix(occ.value, "lib") || strings.ContainsAny(occ.value, `./\`)) {
		ws = append(ws, Warning{Attr: occ.name, Component: occ.comp, Offset: -1,
			Text: fmt.Sprintf(`the attribute "module-name" SHOULD contain a case-insensitive PKCS#11 module name `+
				`(not path nor filename) without system-specific affices. Context: %s.`, occ.token())})
	}

	safe := grammar.IsPathSafeChar
	if occ.comp == QueryComponent {
		safe = grammar.IsQuerySafeChar
	}
	for i := 0; i < len(occ.value); i++ {
		switch c := occ.value[i]; {
		case c == '%':
			if i+2 < len(occ.value) && grammar.IsHexChar(occ.value[i+1]) && grammar.IsHexChar(occ.value[i+2]) {
				i += 2
				break
			}
			ws = append(ws, Warning{Attr: occ.name, Component: occ.comp, Offset: i, Char: c,
				Text: fmt.Sprintf("identified malformed percent-encoding at offset %d in `%s` of component `%s`.",
					i, occ.value, occ.token())})
		case !safe(c):
			ws = append(ws, Warning{Attr: occ.name, Component: occ.comp, Offset: i, Char: c,
				Text: fmt.Sprintf("the `%c` identified at offset %d in `%s` of component `%s` SHOULD be percent-encoded.",
					c, i, occ.value, occ.token())})
		}
	}
	return ws
}

func emitWarnings(logger *slog.Logger, ws []Warning) {
	if logger == nil {
		return
	}
	for _, w := range ws {
		logger.Warn(w.String(),
			slog.String("attr", w.Attr),
			slog.String("component", w.Component.String()),
		)
	}
}
