package reflection

import "testing"

func TestSystemSchemasKnownDialects(t *testing.T) {
	pg := SystemSchemas("postgres")
	found := false
	for _, s := range pg {
		if s == "pg_catalog" {
			found = true
		}
	}
	if !found {
		t.Fatalf("postgres denylist missing pg_catalog: %v", pg)
	}
	if len(SystemSchemas("oracle")) == 0 {
		t.Fatal("oracle denylist must not be empty")
	}
}

func TestSystemSchemasUnknownDialectEmpty(t *testing.T) {
	if got := SystemSchemas("duckdb"); len(got) != 0 {
		t.Fatalf("unknown dialect must have no denylist, got %v", got)
	}
}
