package cart

import (
	"sort"
	"strconv"
	"strings"
)

// Attribute is a single variant dimension of a cart item, e.g. size=M.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attributes is an ordered set of variant attributes.
// Entries are kept sorted by name with unique names, so two sets holding the
// same pairs compare equal regardless of the order they were supplied in.
type Attributes []Attribute

// NewAttributes builds a normalized attribute set from a plain map.
// Blank names are dropped, names and values are trimmed.
func NewAttributes(m map[string]string) Attributes {
	if len(m) == 0 {
		return nil
	}
	attrs := make(Attributes, 0, len(m))
	for name, value := range m {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		attrs = append(attrs, Attribute{Name: name, Value: strings.TrimSpace(value)})
	}
	return attrs.normalize()
}

// normalize sorts by name and keeps the last value seen for a repeated name.
func (a Attributes) normalize() Attributes {
	if len(a) == 0 {
		return nil
	}
	sort.SliceStable(a, func(i, j int) bool { return a[i].Name < a[j].Name })
	out := a[:0]
	for _, attr := range a {
		if n := len(out); n > 0 && out[n-1].Name == attr.Name {
			out[n-1] = attr
			continue
		}
		out = append(out, attr)
	}
	return out
}

// Get returns the value for name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a)
}

// Equal compares two sets by key/value pairs, ignoring order.
func (a Attributes) Equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for _, attr := range a {
		v, ok := other.Get(attr.Name)
		if !ok || v != attr.Value {
			return false
		}
	}
	return true
}

// Map returns the attributes as a plain map, nil when empty.
func (a Attributes) Map() map[string]string {
	if len(a) == 0 {
		return nil
	}
	m := make(map[string]string, len(a))
	for _, attr := range a {
		m[attr.Name] = attr.Value
	}
	return m
}

// Key returns the canonical string form of the set, "" when empty.
func (a Attributes) Key() string {
	if len(a) == 0 {
		return ""
	}
	sorted := make(Attributes, len(a))
	copy(sorted, a)
	sorted = sorted.normalize()

	var b strings.Builder
	for i, attr := range sorted {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Quote(attr.Name))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(attr.Value))
	}
	return b.String()
}

// Clone returns a copy that shares no backing array with a.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}
