package engine

import (
	"errors"
	"fmt"

	"minisql/pkg/dberror"
	"minisql/pkg/executor"
)

// QueryResult is a statement result flattened to strings for display.
type QueryResult struct {
	Success      bool
	Columns      []string
	Rows         [][]string
	RowsAffected int
	Message      string
	Error        error
}

// ResultFormatter handles formatting of statement results
type ResultFormatter struct{}

// NewResultFormatter creates a new instance of ResultFormatter
func NewResultFormatter() *ResultFormatter {
	return &ResultFormatter{}
}

// Format converts an executor result, or the error of a failed statement,
// into a QueryResult.
func (f *ResultFormatter) Format(res *executor.Result, err error) QueryResult {
	if err != nil {
		return f.FormatError(err)
	}

	switch res.Type {
	case executor.SelectResultType:
		return f.FormatSelect(res)
	case executor.DMLResultType:
		return QueryResult{
			Success:      true,
			RowsAffected: res.RowsAffected,
			Message:      res.Message,
		}
	default:
		return QueryResult{Success: true, Message: res.Message}
	}
}

// FormatSelect converts SELECT results to standard format
func (f *ResultFormatter) FormatSelect(res *executor.Result) QueryResult {
	return QueryResult{
		Success: true,
		Columns: res.Columns,
		Rows:    res.Values(),
		Message: fmt.Sprintf("%d row(s) returned", len(res.Rows)),
	}
}

// FormatError renders err as "KIND: message", with the hint on a second
// line when there is one.
func (f *ResultFormatter) FormatError(err error) QueryResult {
	msg := err.Error()
	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) {
		msg = fmt.Sprintf("%s: %s", dbErr.Kind, dbErr.Message)
		if dbErr.Detail != "" {
			msg += " (" + dbErr.Detail + ")"
		}
		if dbErr.Position != dberror.NoPosition {
			msg += fmt.Sprintf(" at position %d", dbErr.Position)
		}
		if dbErr.Hint != "" {
			msg += "\nHint: " + dbErr.Hint
		}
	}
	return QueryResult{Success: false, Message: msg, Error: err}
}
