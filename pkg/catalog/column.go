package catalog

import (
	"minisql/pkg/types"
)

// Column is a (name, type) pair of a table. Both are fixed at creation.
type Column struct {
	Name string
	Type types.ColumnType
}

func (c Column) String() string {
	return c.Name + " " + c.Type.String()
}
