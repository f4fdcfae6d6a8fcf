package pk11uri

//go:generate errtrace -w .

import (
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/pk11uri/internal/constraints"
	"github.com/ghettovoice/pk11uri/log"
)

// Scheme is the literal URI scheme token every PKCS#11 URI must start with.
const Scheme = "pkcs11:"

// Options holds per-call parse options.
type Options struct {
	// Logger receives advisory warnings in builds where the warning
	// scanner is compiled in. Defaults to [log.Def].
	Logger *slog.Logger
}

// Option configures a [Parse] call.
type Option func(*Options)

// WithLogger sets the logger advisory warnings are emitted through.
// Pass [log.Noop] to silence them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Parse parses and verifies the contents of the given PKCS#11 URI src
// (string or []byte), making parsed values available through a [Mapping].
// A violation of RFC 7512 yields a *[ParseError]; there is no partial
// success.
//
// The mapping's values are slices of the (tidied) input, so the mapping is
// cheap to keep but carries the input with it.
func Parse[T constraints.Byteseq](src T, opts ...Option) (*Mapping, error) {
	options := Options{Logger: log.Def}
	for _, o := range opts {
		o(&options)
	}

	p := parser{uri: tidy(string(src))}
	m, perr := p.parse()
	if perr != nil {
		return nil, errtrace.Wrap(perr)
	}
	if warningsEnabled {
		m.warnings = p.scanWarnings()
		emitWarnings(options.Logger, m.warnings)
	}
	return m, nil
}

// occurrence is one `name=value` token located within the tidied input.
// Occurrences live only for the duration of a parse call: the validator
// consumes them during the scan and the warning scanner re-reads the
// accepted ones afterwards.
type occurrence struct {
	name, value string
	comp        Component
	// tokStart/tokEnd span the whole trimmed token, valStart the value.
	tokStart, tokEnd int
	valStart         int
	vendor           bool
}

func (occ occurrence) token() string { return occ.name + "=" + occ.value }

type parser struct {
	uri  string
	m    *Mapping
	occs []occurrence
	// seen tracks standard attribute names across both components:
	// a repeat anywhere is a violation.
	seen map[string]bool
}

func (p *parser) parse() (*Mapping, *ParseError) {
	if !strings.HasPrefix(p.uri, Scheme) {
		return nil, &ParseError{
			URI:       p.uri,
			Start:     0,
			End:       min(len(p.uri), len(Scheme)),
			Kind:      ErrSchemeMismatch,
			Violation: "Invalid `pk11-URI`: expected `\"pkcs11:\" pk11-path [ \"?\" pk11-query ]`.",
			Help:      "A PKCS#11 URI must start with the `pkcs11:` scheme.",
		}
	}

	// A lone `pkcs11:` scheme is valid, so the mapping exists up front.
	p.m = &Mapping{uri: p.uri, std: make(map[string]string), vendor: make(Values)}
	p.seen = make(map[string]bool)

	path := p.uri[len(Scheme):]
	var query string
	qIdx := strings.IndexByte(path, '?')
	if qIdx >= 0 {
		path, query = path[:qIdx], path[qIdx+1:]
	}

	if perr := p.component(path, len(Scheme), PathComponent); perr != nil {
		return nil, perr
	}
	if qIdx >= 0 {
		if perr := p.component(query, len(Scheme)+qIdx+1, QueryComponent); perr != nil {
			return nil, perr
		}
	}
	return p.m, nil
}

// component tokenizes one logical component on its delimiter and feeds each
// token to the validator/aggregator. base is the byte offset of the
// component within the tidied input.
func (p *parser) component(s string, base int, comp Component) *ParseError {
	if s == "" {
		return nil
	}
	sep := comp.delimiter()
	for off := 0; ; {
		stop := len(s)
		if rel := strings.IndexByte(s[off:], sep); rel >= 0 {
			stop = off + rel
		}
		if perr := p.attribute(s[off:stop], base+off, comp); perr != nil {
			return perr
		}
		if stop == len(s) {
			return nil
		}
		off = stop + 1
	}
}

// attribute splits one token into name and value, validates it and assigns
// it to the mapping. Space around the token, the name and the value is
// tolerated: RFC 7512 examples wrap URIs with indentation.
func (p *parser) attribute(tok string, base int, comp Component) *ParseError {
	l, r := 0, len(tok)
	for l < r && tok[l] == ' ' {
		l++
	}
	for r > l && tok[r-1] == ' ' {
		r--
	}
	tok = tok[l:r]
	tokStart, tokEnd := base+l, base+r

	if tok == "" {
		if !validationEnabled {
			return nil
		}
		return p.errAt(tokStart, tokStart, ErrMalformedAttribute,
			"Misplaced "+comp.String()+" delimiter.",
			"Remove the misplaced '"+string(comp.delimiter())+"' delimiter.")
	}

	eq := strings.IndexByte(tok, '=')
	if eq < 0 {
		if !validationEnabled {
			return nil
		}
		return p.errAt(tokStart, tokEnd, ErrMalformedAttribute,
			"Malformed component.",
			"Attributes must take the `name=value` form; see RFC 7512, section 2.3 for the attribute grammar.")
	}

	name := strings.TrimRight(tok[:eq], " ")
	rest := tok[eq+1:]
	vl := 0
	for vl < len(rest) && rest[vl] == ' ' {
		vl++
	}
	value := strings.TrimRight(rest[vl:], " ")

	occ := occurrence{
		name:     name,
		value:    value,
		comp:     comp,
		tokStart: tokStart,
		tokEnd:   tokEnd,
		valStart: tokStart + eq + 1 + vl,
	}

	def, standard := registry()[name]
	occ.vendor = !standard

	if standard {
		if validationEnabled {
			if perr := p.checkStandard(occ, def); perr != nil {
				return perr
			}
		}
		p.m.std[name] = value
		p.seen[name] = true
	} else {
		if validationEnabled {
			if perr := p.checkVendor(occ); perr != nil {
				return perr
			}
		}
		p.m.vendor.Append(name, value)
	}

	if warningsEnabled {
		p.occs = append(p.occs, occ)
	}
	return nil
}

func (p *parser) errAt(start, end int, kind Error, violation, help string) *ParseError {
	return &ParseError{
		URI:       p.uri,
		Start:     start,
		End:       end,
		Kind:      kind,
		Violation: violation,
		Help:      help,
	}
}

// tidy strips newline and tab formatting so byte offsets land on a single
// rendered line. RFC 7512 examples wrap long URIs across lines.
func tidy(s string) string {
	if !strings.ContainsAny(s, "\n\t") {
		return s
	}
	return strings.NewReplacer("\n", "", "\t", "").Replace(s)
}
