package executor

import (
	"minisql/pkg/catalog"
	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

// boundPredicate is a WHERE clause resolved against a table: the column
// position and the literal coerced to that column's type.
type boundPredicate struct {
	index int
	value types.Field
}

// bind resolves p against t. A nil predicate binds to nil, which matches
// every row.
func (e *Executor) bind(t *catalog.Table, p *statements.Predicate) (*boundPredicate, error) {
	if p == nil {
		return nil, nil
	}
	idx, col, err := t.ResolveColumn(p.Column)
	if err != nil {
		return nil, atPos(err, p.Pos)
	}
	value, err := e.coercer.Coerce(col.Name, col.Type, p.Value)
	if err != nil {
		return nil, err
	}
	return &boundPredicate{index: idx, value: value}, nil
}

// matches compares the stored field with the coerced literal byte for byte.
func (b *boundPredicate) matches(row types.Row) bool {
	if b == nil {
		return true
	}
	return row[b.index].Equals(b.value)
}
