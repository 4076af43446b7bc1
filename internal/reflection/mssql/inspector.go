package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/alexanderjulianmartinez/schema-catalog/internal/reflection"
)

type Inspector struct {
	db      *sql.DB
	timeout time.Duration
}

func New(dsn string) (*Inspector, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("mssql ping failed: %w", err)
	}

	return &Inspector{
		db:      db,
		timeout: 5 * time.Second,
	}, nil
}

func (i *Inspector) Dialect() string { return "mssql" }

func (i *Inspector) Close() error { return i.db.Close() }

func (i *Inspector) SchemaNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	rows, err := i.db.QueryContext(ctx, `
		SELECT SCHEMA_NAME
		FROM INFORMATION_SCHEMA.SCHEMATA
		ORDER BY SCHEMA_NAME
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
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME
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

	// Descriptions come from the MS_Description extended property, keyed
	// by object id and column ordinal.
	rows, err := i.db.QueryContext(ctx, `
		SELECT c.COLUMN_NAME, c.DATA_TYPE, c.IS_NULLABLE,
		       CAST(ep.value AS NVARCHAR(4000))
		FROM INFORMATION_SCHEMA.COLUMNS c
		LEFT JOIN sys.extended_properties ep
		  ON ep.major_id = OBJECT_ID(QUOTENAME(c.TABLE_SCHEMA) + '.' + QUOTENAME(c.TABLE_NAME))
		 AND ep.minor_id = c.ORDINAL_POSITION
		 AND ep.name = 'MS_Description'
		WHERE c.TABLE_SCHEMA = @p1 AND c.TABLE_NAME = @p2
		ORDER BY c.ORDINAL_POSITION
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
		SELECT kcu.COLUMN_NAME
		FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
		JOIN INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
		  ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
		 AND tc.TABLE_SCHEMA = kcu.TABLE_SCHEMA
		WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
		  AND kcu.TABLE_SCHEMA = @p1 AND kcu.TABLE_NAME = @p2
		ORDER BY kcu.ORDINAL_POSITION
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
