package pk11uri

import (
	"maps"
	"slices"

	"braces.dev/errtrace"
)

// Values maps an attribute name to an ordered list of values.
// It is used to store vendor-specific attributes, which, unlike standard
// ones, may legally repeat within and across URI components. Keys are
// case-sensitive: RFC 7512 attribute names are literal.
type Values map[string][]string

// Get returns values associated with the given key.
// If there are no values associated with the key, Get returns the empty slice.
func (vals Values) Get(key string) []string { return vals[key] }

// First returns the first value associated with the key, or "".
func (vals Values) First(key string) string {
	v := vals[key]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Last returns the last value associated with the key, or "".
func (vals Values) Last(key string) string {
	v := vals[key]
	if len(v) == 0 {
		return ""
	}
	return v[len(v)-1]
}

// Set sets the key to value. It replaces any existing values.
func (vals Values) Set(key, value string) Values {
	vals[key] = []string{value}
	return vals
}

// Append appends value to the list associated with key, preserving
// encounter order.
func (vals Values) Append(key, value string) Values {
	vals[key] = append(vals[key], value)
	return vals
}

// Has checks whether a given key is in the list.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

// Clone returns copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, vs := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = slices.Clone(vs)
	}
	return vals2
}

// Mapping encapsulates the result of successfully parsing a PKCS#11 URI.
//
// All values are raw slices of the (tidied) input: percent-encoded octets
// are passed through undecoded, matching what tools like p11tool print.
// An attribute present with an explicit empty value is reported as present
// with "", which is distinct from the attribute being absent. Callers must
// not modify returned vendor slices.
type Mapping struct {
	uri      string
	std      map[string]string
	vendor   Values
	warnings []Warning
}

// Attr returns the value of the standard attribute with the given RFC 7512
// name, and whether it was present.
func (m *Mapping) Attr(name string) (string, bool) {
	v, ok := m.std[name]
	return v, ok
}

// Token returns the value of the "token" path attribute if one was parsed.
func (m *Mapping) Token() (string, bool) { return m.Attr("token") }

// Manufacturer returns the value of the "manufacturer" path attribute if one was parsed.
func (m *Mapping) Manufacturer() (string, bool) { return m.Attr("manufacturer") }

// Serial returns the value of the "serial" path attribute if one was parsed.
func (m *Mapping) Serial() (string, bool) { return m.Attr("serial") }

// Model returns the value of the "model" path attribute if one was parsed.
func (m *Mapping) Model() (string, bool) { return m.Attr("model") }

// LibraryManufacturer returns the value of the "library-manufacturer" path attribute if one was parsed.
func (m *Mapping) LibraryManufacturer() (string, bool) { return m.Attr("library-manufacturer") }

// LibraryVersion returns the value of the "library-version" path attribute if one was parsed.
func (m *Mapping) LibraryVersion() (string, bool) { return m.Attr("library-version") }

// LibraryDescription returns the value of the "library-description" path attribute if one was parsed.
func (m *Mapping) LibraryDescription() (string, bool) { return m.Attr("library-description") }

// Object returns the value of the "object" path attribute if one was parsed.
func (m *Mapping) Object() (string, bool) { return m.Attr("object") }

// Type returns the value of the "type" path attribute if one was parsed.
func (m *Mapping) Type() (string, bool) { return m.Attr("type") }

// ID returns the value of the "id" path attribute if one was parsed.
func (m *Mapping) ID() (string, bool) { return m.Attr("id") }

// SlotDescription returns the value of the "slot-description" path attribute if one was parsed.
func (m *Mapping) SlotDescription() (string, bool) { return m.Attr("slot-description") }

// SlotManufacturer returns the value of the "slot-manufacturer" path attribute if one was parsed.
func (m *Mapping) SlotManufacturer() (string, bool) { return m.Attr("slot-manufacturer") }

// SlotID returns the value of the "slot-id" path attribute if one was parsed.
func (m *Mapping) SlotID() (string, bool) { return m.Attr("slot-id") }

// PinSource returns the value of the "pin-source" query attribute if one was parsed.
func (m *Mapping) PinSource() (string, bool) { return m.Attr("pin-source") }

// PinValue returns the value of the "pin-value" query attribute if one was parsed.
func (m *Mapping) PinValue() (string, bool) { return m.Attr("pin-value") }

// ModuleName returns the value of the "module-name" query attribute if one was parsed.
func (m *Mapping) ModuleName() (string, bool) { return m.Attr("module-name") }

// ModulePath returns the value of the "module-path" query attribute if one was parsed.
func (m *Mapping) ModulePath() (string, bool) { return m.Attr("module-path") }

// Vendor returns the ordered values of the vendor-specific attribute with
// the given name, and whether any were parsed. Values appear in encounter
// order across the path and query components.
func (m *Mapping) Vendor(name string) ([]string, bool) {
	v, ok := m.vendor[name]
	return v, ok
}

// VendorNames returns the sorted names of all parsed vendor-specific attributes.
func (m *Mapping) VendorNames() []string {
	return slices.Sorted(maps.Keys(m.vendor))
}

// Warnings returns the RFC 7512 SHOULD/SHOULD-NOT advisories collected for
// this mapping, in attribute-occurrence order. Advisories never affect the
// parse outcome and are empty in builds with the pk11uri_nowarn tag.
func (m *Mapping) Warnings() []Warning { return m.warnings }

// URI returns the tidied input the mapping was parsed from.
func (m *Mapping) URI() string { return m.uri }

// String returns the string representation of the mapping.
func (m *Mapping) String() string {
	if m == nil {
		return ""
	}
	return m.uri
}

// MarshalText implements [encoding.TextMarshaler].
func (m *Mapping) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mapping) UnmarshalText(text []byte) error {
	m1, err := Parse(text)
	if err != nil {
		*m = Mapping{}
		return errtrace.Wrap(err)
	}
	*m = *m1
	return nil
}
