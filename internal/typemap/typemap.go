package typemap

import "strings"

// DefaultType is returned for any source type with no entry in the table.
const DefaultType = "string"

type entry struct {
	token     string
	canonical string
}

// Registry maps source database type tokens to canonical catalog types.
// Entries are ordered: the substring fallback returns the first matching
// token in declaration order, so the table order is a priority policy.
type Registry struct {
	entries []entry
}

func NewRegistry(pairs [][2]string) *Registry {
	r := &Registry{entries: make([]entry, 0, len(pairs))}
	for _, p := range pairs {
		r.entries = append(r.entries, entry{token: strings.ToLower(p[0]), canonical: p[1]})
	}
	return r
}

var defaultRegistry = NewRegistry([][2]string{
	{"int8", "int8"},
	{"int16", "int16"},
	{"int32", "int32"},
	{"int64", "int64"},
	{"bigint", "int64"},
	{"int2", "int32"},
	{"int4", "int32"},
	{"integer", "int32"},
	{"smallint", "int32"},
	{"numeric", "float64"},
	{"double precision", "float64"},
	{"text", "string"},
	{"uuid", "string"},
	{"character", "string"},
	{"tsvector", "string"},
	{"jsonb", "string"},
	{"varchar", "string"},
	{"bpchar", "string"},
	{"date", "date64"},
	{"boolean", "bool"},
	{"timestamptz", "timestamp(ms)"},
	{"timestamp", "timestamp(ms)"},
	{"datetime", "timestamp(ms)"},
	{"bool", "bool"},
})

// Default returns the shared registry built at package init. It is never
// mutated after construction.
func Default() *Registry {
	return defaultRegistry
}

// Canonicalize converts a database-reported type name into a canonical
// catalog type. Lookup is case-insensitive: first an exact match, then the
// first table token that is a substring of the input (covers qualified
// types like VARCHAR(255)), then DefaultType.
func (r *Registry) Canonicalize(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	for _, e := range r.entries {
		if e.token == t {
			return e.canonical
		}
	}
	for _, e := range r.entries {
		if strings.Contains(t, e.token) {
			return e.canonical
		}
	}
	return DefaultType
}

// Canonicalize uses the default registry.
func Canonicalize(raw string) string {
	return defaultRegistry.Canonicalize(raw)
}
