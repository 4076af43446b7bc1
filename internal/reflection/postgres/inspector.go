package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/alexanderjulianmartinez/schema-catalog/internal/reflection"
)

type Inspector struct {
	db      *sql.DB
	timeout time.Duration
}

func New(dsn string) (*Inspector, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return &Inspector{
		db:      db,
		timeout: 5 * time.Second,
	}, nil
}

func (i *Inspector) Dialect() string { return "postgres" }

func (i *Inspector) Close() error { return i.db.Close() }

func (i *Inspector) SchemaNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	rows, err := i.db.QueryContext(ctx, `
		SELECT schema_name
		FROM information_schema.schemata
		ORDER BY schema_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (i *Inspector) TableNames(ctx context.Context, schema string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	rows, err := i.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`, schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (i *Inspector) Columns(ctx context.Context, table, schema string) ([]reflection.Column, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	// Column comments live in pg_description, keyed by the table relation
	// and the column's ordinal position.
	rows, err := i.db.QueryContext(ctx, `
		SELECT c.column_name, c.data_type, c.is_nullable,
		       pg_catalog.col_description(
		           format('%I.%I', c.table_schema, c.table_name)::regclass::oid,
		           c.ordinal_position::int
		       )
		FROM information_schema.columns c
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []reflection.Column
	for rows.Next() {
		var name, dataType, nullable string
		var comment sql.NullString
		if err := rows.Scan(&name, &dataType, &nullable, &comment); err != nil {
			return nil, err
		}
		col := reflection.Column{
			Name:       name,
			DataType:   dataType,
			IsNullable: nullable,
		}
		if comment.Valid && comment.String != "" {
			col.Comment = &comment.String
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func (i *Inspector) PrimaryKeys(ctx context.Context, table, schema string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	rows, err := i.db.QueryContext(ctx, `
		SELECT kcu.column_name
		FROM information_schema.key_column_usage kcu
		JOIN information_schema.table_constraints tc
		  ON tc.constraint_name = kcu.constraint_name
		 AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
		  AND kcu.table_schema = $1 AND kcu.table_name = $2
		ORDER BY kcu.ordinal_position
	`, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
