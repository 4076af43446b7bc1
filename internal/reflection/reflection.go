package reflection

import "context"

// Column is a raw column descriptor as reported by a dialect inspector.
// IsNullable carries the information_schema marker ("YES"/"NO") verbatim;
// Comment is nil when the database has no comment for the column.
type Column struct {
	Name       string
	DataType   string
	IsNullable string
	Comment    *string
}

// Inspector enumerates schemas, tables and columns over an already-open
// connection. Implementations own the connection; callers never retry or
// suppress inspector errors.
type Inspector interface {
	Dialect() string
	SchemaNames(ctx context.Context) ([]string, error)
	TableNames(ctx context.Context, schema string) ([]string, error)
	Columns(ctx context.Context, table, schema string) ([]Column, error)
	PrimaryKeys(ctx context.Context, table, schema string) ([]string, error)
}

// systemSchemas lists internal schemas the catalog should never report,
// keyed by dialect. Dialects not listed here get no filtering.
var systemSchemas = map[string][]string{
	"postgres": {
		"pg_catalog",
		"information_schema",
		"pg_toast",
		"pg_temp_1",
		"pg_toast_temp_1",
	},
	"mysql": {
		"information_schema",
		"mysql",
		"performance_schema",
		"sys",
	},
	"mssql": {
		"information_schema",
		"sys",
		"guest",
		"db_accessadmin",
		"db_backupoperator",
		"db_datareader",
		"db_datawriter",
		"db_ddladmin",
		"db_denydatareader",
		"db_denydatawriter",
		"db_owner",
		"db_securityadmin",
	},
	"oracle": {
		"ADMIN",
		"ANONYMOUS",
		"APPQOSSYS",
		"AUDSYS",
		"CTXSYS",
		"DBSFWUSER",
		"DBSNMP",
		"DIP",
		"GGSYS",
		"GSMADMIN_INTERNAL",
		"GSMUSER",
		"OUTLN",
		"PUBLIC",
		"RDSADMIN",
		"REMOTE_SCHEDULER_AGENT",
		"SYS",
		"SYS$UMF",
		"SYSBACKUP",
		"SYSDG",
		"SYSKM",
		"SYSRAC",
		"SYSTEM",
		"XDB",
		"XS$NULL",
	},
}

// SystemSchemas returns the built-in denylist for a dialect. Matching
// against it is the caller's job and must be case-insensitive.
func SystemSchemas(dialect string) []string {
	return systemSchemas[dialect]
}
