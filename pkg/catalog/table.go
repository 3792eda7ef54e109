package catalog

import (
	"minisql/pkg/dberror"
	"minisql/pkg/storage/heap"
)

// Table is a named, ordered list of columns together with the heap that
// stores its rows. Columns never change after creation.
type Table struct {
	Name      string
	StorageID string

	columns []Column
	index   map[string]int
	heap    *heap.HeapFile
}

func newTable(name, storageID string, columns []Column, hf *heap.HeapFile) *Table {
	t := &Table{
		Name:      name,
		StorageID: storageID,
		columns:   columns,
		index:     make(map[string]int, len(columns)),
		heap:      hf,
	}
	for i, c := range columns {
		t.index[c.Name] = i
	}
	return t
}

// Columns returns a copy of the column definitions in declaration order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumColumns is the arity of the table's rows.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Column returns the i-th column.
func (t *Table) Column(i int) Column {
	return t.columns[i]
}

// ColumnNames lists the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// ResolveColumn finds a column by its case-sensitive name and returns its
// position and definition.
func (t *Table) ResolveColumn(name string) (int, Column, error) {
	i, ok := t.index[name]
	if !ok {
		return -1, Column{}, dberror.NotFound("column", name).
			WithDetail("table '" + t.Name + "'")
	}
	return i, t.columns[i], nil
}

// Heap returns the row store of the table.
func (t *Table) Heap() *heap.HeapFile {
	return t.heap
}

// RowCount is the number of rows stored in the table.
func (t *Table) RowCount() int {
	return t.heap.RowCount()
}

// NumPages is the number of storage pages the table occupies.
func (t *Table) NumPages() int {
	return t.heap.NumPages()
}
