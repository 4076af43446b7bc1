package metadata

import (
	"fmt"
	"strings"
)

// SchemaVersion identifies the table document shape consumed by the catalog.
const SchemaVersion = "https://alexanderjulianmartinez.github.io/schema-catalog/table/v1.json"

type Column struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	Nullable    bool    `json:"nullable"`
}

// Metadata is the table document handed to the downstream catalog.
type Metadata struct {
	Schema      string   `json:"$schema"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	FileFormat  string   `json:"file_format"`
	Sensitive   bool     `json:"sensitive"`
	Columns     []Column `json:"columns"`
	PrimaryKey  []string `json:"primary_key"`
	Partitions  []string `json:"partitions"`
}

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid table metadata: " + e.Reason
}

// New builds a table document, rejecting malformed column records. The
// checks here stand in for the catalog's own schema validation: a failure
// means the record never reaches the catalog.
func New(name string, columns []Column) (*Metadata, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Reason: "table name is required"}
	}
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("column %d of table %q has no name", i, name)}
		}
		if col.Type == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("column %q of table %q has no type", col.Name, name)}
		}
		if seen[col.Name] {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate column %q in table %q", col.Name, name)}
		}
		seen[col.Name] = true
	}
	if columns == nil {
		columns = []Column{}
	}
	return &Metadata{
		Schema:     SchemaVersion,
		Name:       name,
		Columns:    columns,
		PrimaryKey: []string{},
		Partitions: []string{},
	}, nil
}
