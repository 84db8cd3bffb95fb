package schema

import (
	"fmt"
	"strings"
)

type Column struct {
	Name     string
	Type     string
	Nullable bool
}

type Table struct {
	Name    string
	Columns []Column
}

// Description enumerates every accessible table in introspection order.
// It is rebuilt per request and never mutated once returned.
type Description struct {
	Tables []Table
}

func (d *Description) TableNames() []string {
	names := make([]string, 0, len(d.Tables))
	for _, t := range d.Tables {
		names = append(names, t.Name)
	}
	return names
}

// String renders the description in the format embedded into prompts:
//
//	Table: estonian_tenders
//	Columns:
//	  id (integer) NOT NULL
//	  title (text)
func (d *Description) String() string {
	var parts []string

	for _, t := range d.Tables {
		var b strings.Builder
		fmt.Fprintf(&b, "Table: %s\n", t.Name)
		b.WriteString("Columns:")
		for _, c := range t.Columns {
			fmt.Fprintf(&b, "\n  %s (%s)", c.Name, c.Type)
			if !c.Nullable {
				b.WriteString(" NOT NULL")
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
