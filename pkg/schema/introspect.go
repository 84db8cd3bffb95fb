package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	dbenv "github.com/tendly/tenderchat/pkg/env/db"
)

const (
	postgresTablesQuery = `
SELECT table_name
FROM information_schema.tables
WHERE table_type = 'BASE TABLE'
  AND table_schema = 'public'
ORDER BY table_name;`

	postgresColumnsQuery = `
SELECT column_name, data_type, is_nullable
FROM information_schema.columns
WHERE table_schema = 'public'
  AND table_name = $1
ORDER BY ordinal_position;`

	mysqlTablesQuery = `
SELECT table_name
FROM information_schema.tables
WHERE table_type = 'BASE TABLE'
  AND table_schema = DATABASE()
ORDER BY table_name;`

	mysqlColumnsQuery = `
SELECT column_name, data_type, is_nullable
FROM information_schema.columns
WHERE table_schema = DATABASE()
  AND table_name = ?
ORDER BY ordinal_position;`

	sqlserverTablesQuery = `
SELECT table_name
FROM information_schema.tables
WHERE table_type = 'BASE TABLE'
ORDER BY table_name;`

	sqlserverColumnsQuery = `
SELECT column_name, data_type, is_nullable
FROM information_schema.columns
WHERE table_name = @p1
ORDER BY ordinal_position;`

	sqliteTablesQuery = `
SELECT name
FROM sqlite_master
WHERE type = 'table'
  AND name NOT LIKE 'sqlite_%'
ORDER BY name;`
)

// Introspector enumerates tables and columns using the metadata queries
// appropriate for the configured driver.
type Introspector struct {
	db     *sql.DB
	driver dbenv.DriverType
}

func NewIntrospector(db *sql.DB, driver dbenv.DriverType) *Introspector {
	return &Introspector{db: db, driver: driver}
}

// Describe produces a fresh Description of every accessible base table.
// An empty database yields an empty Description, not an error.
func (i *Introspector) Describe(ctx context.Context) (*Description, error) {
	tables, err := i.listTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to list tables: %w", err)
	}

	description := &Description{}
	for _, name := range tables {
		columns, err := i.describeTable(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("unable to describe table %s: %w", name, err)
		}
		description.Tables = append(description.Tables, Table{
			Name:    name,
			Columns: columns,
		})
	}

	return description, nil
}

// TableNames lists base table names without describing their columns.
func (i *Introspector) TableNames(ctx context.Context) ([]string, error) {
	return i.listTables(ctx)
}

func (i *Introspector) listTables(ctx context.Context) ([]string, error) {
	var query string

	switch i.driver.Name() {
	case "pgx":
		query = postgresTablesQuery
	case "mysql":
		query = mysqlTablesQuery
	case "sqlserver":
		query = sqlserverTablesQuery
	case "sqlite":
		query = sqliteTablesQuery
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", i.driver)
	}

	rows, err := i.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (i *Introspector) describeTable(ctx context.Context, table string) ([]Column, error) {
	if i.driver.Name() == "sqlite" {
		return i.describeSQLiteTable(ctx, table)
	}

	var query string
	switch i.driver.Name() {
	case "pgx":
		query = postgresColumnsQuery
	case "mysql":
		query = mysqlColumnsQuery
	case "sqlserver":
		query = sqlserverColumnsQuery
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", i.driver)
	}

	rows, err := i.db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var columns []Column
	for rows.Next() {
		var name, dataType, nullable string
		if err := rows.Scan(&name, &dataType, &nullable); err != nil {
			return nil, err
		}
		columns = append(columns, Column{
			Name:     name,
			Type:     strings.ToLower(dataType),
			Nullable: strings.EqualFold(nullable, "YES"),
		})
	}

	return columns, rows.Err()
}

// PRAGMA statements do not accept bind parameters, so the table name is
// quoted into the statement directly. Names come from sqlite_master, not
// from user input.
func (i *Introspector) describeSQLiteTable(ctx context.Context, table string) ([]Column, error) {
	quoted := strings.ReplaceAll(table, `"`, `""`)

	rows, err := i.db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info("%s")`, quoted))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var columns []Column
	for rows.Next() {
		var (
			cid          int
			name, ctype  string
			notNull, pk  int
			defaultValue sql.NullString
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultValue, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, Column{
			Name:     name,
			Type:     strings.ToLower(ctype),
			Nullable: notNull == 0,
		})
	}

	return columns, rows.Err()
}
