package prompt

import (
	"fmt"
	"strings"

	dbenv "github.com/tendly/tenderchat/pkg/env/db"
)

// Builder constructs the prompt pair submitted to the translator. The
// schema description is embedded fresh on every question.
type Builder struct {
	dialect string
}

func NewBuilder(driver dbenv.DriverType) *Builder {
	return &Builder{dialect: dialectName(driver)}
}

func dialectName(driver dbenv.DriverType) string {
	switch driver.Name() {
	case "pgx":
		return "PostgreSQL"
	case "mysql":
		return "MySQL"
	case "sqlserver":
		return "SQL Server"
	case "sqlite":
		return "SQLite"
	default:
		return "SQL"
	}
}

func (b *Builder) System() string {
	return fmt.Sprintf("You convert natural language questions about an Estonian tender/procurement database "+
		"into a single %s query. Return ONLY SQL. No markdown, no explanation.", b.dialect)
}

func (b *Builder) Question(schema, question string) string {
	return fmt.Sprintf(`Database Schema:
%s

Important Notes:
- The database contains Estonian tender/procurement data
- Use proper table joins when needed
- Handle NULL values appropriately
- Monetary values are in Euro

Common Estonian terms:
- "hanked" = tenders/procurements
- "Harjumaa" = Harju County (includes Tallinn)
- "ehitus" = construction
- "IT" = information technology

Rules:
- Use only listed tables and columns
- Prefer explicit column lists over SELECT *
- Add LIMIT 200 unless the question asks otherwise
- Output a single %s query only

Question: %s`, schema, b.dialect, strings.TrimSpace(question))
}
