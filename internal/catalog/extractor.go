package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderjulianmartinez/schema-catalog/internal/metadata"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/reflection"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/typemap"
)

// Extractor walks a database through a reflection.Inspector and converts
// everything it finds into catalog table documents. It holds no connection
// and no per-call state; every extraction is independent.
type Extractor struct {
	types  *typemap.Registry
	system map[string][]string
}

// New builds an Extractor around a shared type registry. extraSystemSchemas
// adds to (or overrides, per dialect) the built-in system-schema denylists,
// so new dialects can be filtered without touching this package.
func New(types *typemap.Registry, extraSystemSchemas map[string][]string) *Extractor {
	e := &Extractor{types: types, system: map[string][]string{}}
	for dialect, names := range extraSystemSchemas {
		e.system[dialect] = append(e.system[dialect], names...)
	}
	return e
}

func (e *Extractor) denylist(dialect string) []string {
	deny := append([]string(nil), reflection.SystemSchemas(dialect)...)
	return append(deny, e.system[dialect]...)
}

// ListSchemas returns the inspector's schema names minus the dialect's
// system schemas. Unknown dialects are not filtered.
func (e *Extractor) ListSchemas(ctx context.Context, insp reflection.Inspector) ([]string, error) {
	names, err := insp.SchemaNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schemas: %w", err)
	}
	deny := e.denylist(insp.Dialect())
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !containsFold(deny, name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// ListTables returns the table names of a schema in reflection order.
func (e *Extractor) ListTables(ctx context.Context, insp reflection.Inspector, schema string) ([]string, error) {
	tables, err := insp.TableNames(ctx, schema)
	if err != nil {
		return nil, fmt.Errorf("list tables in %q: %w", schema, err)
	}
	return tables, nil
}

// TableMetadata reflects one table and converts it into a catalog document.
// Column order mirrors the order reported by the inspector.
func (e *Extractor) TableMetadata(ctx context.Context, insp reflection.Inspector, table, schema string) (*metadata.Metadata, error) {
	cols, err := insp.Columns(ctx, table, schema)
	if err != nil {
		return nil, fmt.Errorf("columns of %s.%s: %w", schema, table, err)
	}

	columns := make([]metadata.Column, 0, len(cols))
	for _, col := range cols {
		desc := col.Comment
		if desc != nil && *desc == "" {
			desc = nil
		}
		columns = append(columns, metadata.Column{
			Name:        strings.ToLower(col.Name),
			Type:        e.types.Canonicalize(col.DataType),
			Description: desc,
			Nullable:    nullable(col.IsNullable),
		})
	}

	m, err := metadata.New(table, columns)
	if err != nil {
		return nil, err
	}

	pks, err := insp.PrimaryKeys(ctx, table, schema)
	if err != nil {
		return nil, fmt.Errorf("primary keys of %s.%s: %w", schema, table, err)
	}
	if len(pks) > 0 {
		m.PrimaryKey = pks
	}
	return m, nil
}

// SchemaGroup holds the table documents of one schema, in reflection order.
type SchemaGroup struct {
	Schema string
	Tables []*metadata.Metadata
}

// Label is the grouping key used in the exported result.
func (g SchemaGroup) Label() string {
	return "schema: " + g.Schema
}

// ExtractAll reflects the whole database: schemas sorted lexicographically,
// tables per schema in reflection order. Schemas with no tables are kept
// with an empty table list. Any inspector or validation error aborts the
// call; no partial result is returned.
func (e *Extractor) ExtractAll(ctx context.Context, insp reflection.Inspector) ([]SchemaGroup, error) {
	schemas, err := e.ListSchemas(ctx, insp)
	if err != nil {
		return nil, err
	}
	sort.Strings(schemas)

	groups := make([]SchemaGroup, 0, len(schemas))
	for _, schema := range schemas {
		tables, err := e.ListTables(ctx, insp, schema)
		if err != nil {
			return nil, err
		}
		group := SchemaGroup{Schema: schema, Tables: []*metadata.Metadata{}}
		for _, table := range tables {
			m, err := e.TableMetadata(ctx, insp, table, schema)
			if err != nil {
				return nil, err
			}
			group.Tables = append(group.Tables, m)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// AsMap re-keys groups by their labels for export. encoding/json emits map
// keys sorted, which keeps the output deterministic.
func AsMap(groups []SchemaGroup) map[string][]*metadata.Metadata {
	out := make(map[string][]*metadata.Metadata, len(groups))
	for _, g := range groups {
		out[g.Label()] = g.Tables
	}
	return out
}

// nullable reports whether the raw indicator is the affirmative marker.
// Anything else ("NO", empty, absent) means not nullable.
func nullable(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "YES")
}

func containsFold(names []string, s string) bool {
	for _, name := range names {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}
