package catalog

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("unknown catalog label")

// Entry is a predefined shortcut: a label resolving to either a fixed SQL
// statement or a fixed natural-language prompt, never both.
type Entry struct {
	Label    string `json:"label"`
	Category string `json:"category"`
	SQL      string `json:"-"`
	Prompt   string `json:"-"`
}

func (e Entry) IsSQL() bool {
	return e.SQL != ""
}

// Catalog is immutable after construction. Lookup order and listing order
// both follow the declaration order of the entries.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}

	for i, entry := range entries {
		if entry.Label == "" {
			return nil, fmt.Errorf("catalog entry %d has an empty label", i)
		}
		if _, found := c.index[entry.Label]; found {
			return nil, fmt.Errorf("duplicate catalog label: %s", entry.Label)
		}
		if entry.IsSQL() == (entry.Prompt != "") {
			return nil, fmt.Errorf("catalog entry %q must define exactly one of SQL or prompt", entry.Label)
		}
		c.index[entry.Label] = i
	}

	return c, nil
}

func (c *Catalog) Lookup(label string) (Entry, error) {
	i, found := c.index[label]
	if !found {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	return c.entries[i], nil
}

func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
