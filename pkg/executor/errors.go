package executor

import (
	"errors"

	"minisql/pkg/dberror"
)

// atPos attaches a statement position to a resolution error that has none.
func atPos(err error, pos int) error {
	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) && dbErr.Position == dberror.NoPosition {
		dbErr.Position = pos
	}
	return err
}
