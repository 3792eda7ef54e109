package executor

import (
	"minisql/pkg/parser/statements"
	"minisql/pkg/storage/heap"
)

// update runs in three phases:
//  1. resolve the SET and WHERE columns and coerce both literals
//  2. scan the table and collect the positions of matching rows
//  3. overwrite the SET field of every collected row in place
//
// Every check happens in phase 1, so a type error aborts the statement
// before any row is touched. Phase 3 is a single heap call that writes all
// rows or none. Zero matching rows is a successful update.
func (e *Executor) update(s *statements.UpdateStatement, current string) (*Result, error) {
	t, err := e.resolveTable(current, s.TableName)
	if err != nil {
		return nil, err
	}

	setIdx, setCol, err := t.ResolveColumn(s.Set.Column)
	if err != nil {
		return nil, atPos(err, s.Set.Pos)
	}
	where, err := e.bind(t, s.Where)
	if err != nil {
		return nil, err
	}
	value, err := e.coercer.Coerce(setCol.Name, setCol.Type, s.Set.Value)
	if err != nil {
		return nil, err
	}

	matched, err := collectMatches(t.Heap(), where)
	if err != nil {
		return nil, err
	}

	if err := t.Heap().UpdateField(matched, setIdx, value); err != nil {
		return nil, err
	}
	return dmlResult(s.GetType(), len(matched), "updated"), nil
}

func collectMatches(hf *heap.HeapFile, where *boundPredicate) ([]heap.RecordID, error) {
	it := hf.Scan()
	defer it.Close()

	var matched []heap.RecordID
	for it.Next() {
		if where.matches(it.Row()) {
			matched = append(matched, it.RecordID())
		}
	}
	return matched, it.Err()
}
