package catalog

import (
	"fmt"

	"minisql/pkg/dberror"
	"minisql/pkg/storage/heap"
	"minisql/pkg/storage/page"
	"minisql/pkg/types"
)

// validateColumns checks a column list for CREATE TABLE. Duplicate names are
// reported before invalid types.
func validateColumns(table string, columns []Column) error {
	if len(columns) == 0 {
		return dberror.Newf(dberror.KindInvalidType, "table '%s' needs at least one column", table).
			In("CreateTable", "Catalog")
	}

	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col.Name]; dup {
			return dberror.DuplicateColumn(table, col.Name).In("CreateTable", "Catalog")
		}
		seen[col.Name] = struct{}{}
	}

	for _, col := range columns {
		if !col.Type.Valid() {
			detail := fmt.Sprintf("%s is not a storable type", col.Type)
			if col.Type.Type == types.CharType {
				detail = fmt.Sprintf("CHAR length must be at least 1, got %d", col.Type.Length)
			}
			return dberror.InvalidType(col.Name, detail).In("CreateTable", "Catalog")
		}
	}

	if _, err := layoutOf(columns); err != nil {
		return dberror.Wrap(err, dberror.KindInvalidType, "CreateTable", "Catalog").
			WithHint(fmt.Sprintf("rows are stored in %d-byte pages; a row of table '%s' must fit in %d bytes",
				page.PageSize, table, page.PayloadSize))
	}
	return nil
}

func layoutOf(columns []Column) (*heap.Layout, error) {
	cts := make([]types.ColumnType, len(columns))
	for i, col := range columns {
		cts[i] = col.Type
	}
	return heap.NewLayout(cts)
}
