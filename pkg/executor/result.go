package executor

import (
	"fmt"

	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

// ResultType categorizes the different kinds of statement results.
type ResultType int

const (
	// DDLResultType carries a status message only.
	DDLResultType ResultType = iota
	// DMLResultType carries the number of rows inserted or updated.
	DMLResultType
	// SelectResultType carries projected rows.
	SelectResultType
)

func (t ResultType) String() string {
	switch t {
	case DDLResultType:
		return "DDL"
	case DMLResultType:
		return "DML"
	case SelectResultType:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of one successfully executed statement.
type Result struct {
	Type      ResultType
	Statement statements.StatementType
	Message   string

	// RowsAffected is set for INSERT (always 1) and UPDATE (0 or more).
	RowsAffected int

	// Columns and Rows are set for SELECT. Every row holds the projected
	// values in the order of Columns.
	Columns []string
	Rows    []types.Row
}

func ddlResult(st statements.StatementType, msg string) *Result {
	return &Result{Type: DDLResultType, Statement: st, Message: msg}
}

func dmlResult(st statements.StatementType, n int, verb string) *Result {
	return &Result{
		Type:         DMLResultType,
		Statement:    st,
		RowsAffected: n,
		Message:      fmt.Sprintf("%d row(s) %s", n, verb),
	}
}

// Values returns the rows as strings, one slice per row.
func (r *Result) Values() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Strings()
	}
	return out
}

func (r *Result) String() string {
	if r.Type == SelectResultType {
		return fmt.Sprintf("Query returned %d row(s)", len(r.Rows))
	}
	return r.Message
}
