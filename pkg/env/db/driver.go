package db

const (
	driverMySQL      = "mysql"
	driverPostgreSQL = "pgx"
	driverSQLServer  = "sqlserver"
	driverSQLite     = "sqlite"

	driverMySQLPort      = 3306
	driverPostgreSQLPort = 5432
	driverSQLServerPort  = 1433

	driverMySQLFormat      = `%s:%s@tcp(%s:%d)/%s`
	driverPostgreSQLFormat = `postgres://%s:%s@%s:%d/%s`
	driverSQLServerFormat  = `sqlserver://%s:%s@%s:%d?database=%s`
)

type DriverType string

func (t DriverType) String() string {
	return t.Name()
}

func (t DriverType) Name() string {
	switch t {
	case "mysql":
		return driverMySQL
	case "postgresql", "postgres", "pgx":
		return driverPostgreSQL
	case "sqlserver", "mssql":
		return driverSQLServer
	case "sqlite", "sqlite3":
		return driverSQLite
	default:
		return ""
	}
}

func (t DriverType) Port() int {
	switch t.Name() {
	case driverMySQL:
		return driverMySQLPort
	case driverPostgreSQL:
		return driverPostgreSQLPort
	case driverSQLServer:
		return driverSQLServerPort
	default:
		return 0
	}
}

func (t DriverType) Format() string {
	switch t.Name() {
	case driverMySQL:
		return driverMySQLFormat
	case driverPostgreSQL:
		return driverPostgreSQLFormat
	case driverSQLServer:
		return driverSQLServerFormat
	default:
		return ""
	}
}

// IsFileBased reports whether the driver connects to a local file
// rather than a network endpoint.
func (t DriverType) IsFileBased() bool {
	return t.Name() == driverSQLite
}

func (t DriverType) IsValid() bool {
	types := map[string]interface{}{
		"mysql":      struct{}{},
		"postgres":   struct{}{},
		"postgresql": struct{}{},
		"pgx":        struct{}{},
		"sqlserver":  struct{}{},
		"mssql":      struct{}{},
		"sqlite":     struct{}{},
		"sqlite3":    struct{}{},
	}
	_, ok := types[string(t)]

	return ok
}
