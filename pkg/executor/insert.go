package executor

import (
	"strings"

	"minisql/pkg/dberror"
	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

// insert checks arity, coerces every value and only then appends, so a
// rejected value never leaves a partial row behind.
func (e *Executor) insert(s *statements.InsertStatement, current string) (*Result, error) {
	t, err := e.resolveTable(current, s.TableName)
	if err != nil {
		return nil, err
	}

	if len(s.Values) != t.NumColumns() {
		return nil, dberror.ArityMismatch(t.NumColumns(), len(s.Values)).
			WithDetail("table '" + t.Name + "' has columns (" + strings.Join(t.ColumnNames(), ", ") + ")")
	}

	row := make(types.Row, len(s.Values))
	for i, lit := range s.Values {
		col := t.Column(i)
		f, err := e.coercer.Coerce(col.Name, col.Type, lit)
		if err != nil {
			return nil, err
		}
		row[i] = f
	}

	if _, err := t.Heap().Append(row); err != nil {
		return nil, err
	}
	return dmlResult(s.GetType(), 1, "inserted"), nil
}

