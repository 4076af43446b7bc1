package typemap

import "testing"

func TestCanonicalizeExactTokens(t *testing.T) {
	cases := map[string]string{
		"bigint":           "int64",
		"integer":          "int32",
		"smallint":         "int32",
		"int2":             "int32",
		"numeric":          "float64",
		"double precision": "float64",
		"text":             "string",
		"uuid":             "string",
		"jsonb":            "string",
		"varchar":          "string",
		"date":             "date64",
		"boolean":          "bool",
		"bool":             "bool",
		"timestamptz":      "timestamp(ms)",
		"timestamp":        "timestamp(ms)",
		"datetime":         "timestamp(ms)",
	}
	for raw, want := range cases {
		if got := Canonicalize(raw); got != want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestCanonicalizeCaseInsensitive(t *testing.T) {
	if got := Canonicalize("BIGINT"); got != "int64" {
		t.Fatalf("Canonicalize(BIGINT) = %q, want int64", got)
	}
	if got := Canonicalize("  Timestamp  "); got != "timestamp(ms)" {
		t.Fatalf("Canonicalize(  Timestamp  ) = %q, want timestamp(ms)", got)
	}
}

func TestCanonicalizeSubstringFallback(t *testing.T) {
	cases := map[string]string{
		"VARCHAR(255)":             "string",
		"varchar(50)":              "string",
		"numeric(10,2)":            "float64",
		"character varying(40)":    "string",
		"timestamp with time zone": "timestamp(ms)",
		"bigint unsigned":          "int64",
	}
	for raw, want := range cases {
		if got := Canonicalize(raw); got != want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

// The substring fallback takes the first matching token in table order.
// "datetime2" contains both "date" and "datetime"; "date" is declared
// first and wins.
func TestCanonicalizeSubstringTableOrder(t *testing.T) {
	if got := Canonicalize("datetime2"); got != "date64" {
		t.Fatalf("Canonicalize(datetime2) = %q, want date64", got)
	}
}

func TestCanonicalizeUnknownDefaultsToString(t *testing.T) {
	for _, raw := range []string{"geometry", "enum('a','b')", "money", ""} {
		if got := Canonicalize(raw); got != DefaultType {
			t.Fatalf("Canonicalize(%q) = %q, want %q", raw, got, DefaultType)
		}
	}
}

func TestCanonicalizeIsPure(t *testing.T) {
	first := Canonicalize("varchar(50)")
	for i := 0; i < 10; i++ {
		if got := Canonicalize("varchar(50)"); got != first {
			t.Fatalf("repeated Canonicalize returned %q then %q", first, got)
		}
	}
}
