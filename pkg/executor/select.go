package executor

import (
	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

// query projects the requested columns of every matching row, in insertion
// order.
func (e *Executor) query(s *statements.SelectStatement, current string) (*Result, error) {
	t, err := e.resolveTable(current, s.TableName)
	if err != nil {
		return nil, err
	}

	projection := make([]int, len(s.Fields))
	for i, name := range s.Fields {
		idx, _, err := t.ResolveColumn(name)
		if err != nil {
			return nil, err
		}
		projection[i] = idx
	}
	where, err := e.bind(t, s.Where)
	if err != nil {
		return nil, err
	}

	it := t.Heap().Scan()
	defer it.Close()

	rows := make([]types.Row, 0)
	for it.Next() {
		row := it.Row()
		if !where.matches(row) {
			continue
		}
		out := make(types.Row, len(projection))
		for i, idx := range projection {
			out[i] = row[idx]
		}
		rows = append(rows, out)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return &Result{
		Type:      SelectResultType,
		Statement: s.GetType(),
		Columns:   append([]string(nil), s.Fields...),
		Rows:      rows,
	}, nil
}
