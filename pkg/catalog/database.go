package catalog

import (
	"maps"
	"slices"
	"sync"
)

// Database owns a set of tables keyed by case-sensitive name.
type Database struct {
	Name string

	mu     sync.RWMutex
	tables map[string]*Table
}

func newDatabase(name string) *Database {
	return &Database{Name: name, tables: make(map[string]*Table)}
}

// ListTables returns the table names in sorted order.
func (d *Database) ListTables() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Sorted(maps.Keys(d.tables))
}

// NumTables is the number of tables in the database.
func (d *Database) NumTables() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.tables)
}

func (d *Database) table(name string) (*Table, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.tables[name]
	return t, ok
}

func (d *Database) putTable(t *Table) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables[t.Name] = t
}

func (d *Database) removeTable(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.tables, name)
}

// allTables returns the tables sorted by name.
func (d *Database) allTables() []*Table {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Table, 0, len(d.tables))
	for _, name := range slices.Sorted(maps.Keys(d.tables)) {
		out = append(out, d.tables[name])
	}
	return out
}
