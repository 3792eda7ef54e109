package executor

import (
	"context"
	"log/slog"

	"minisql/pkg/catalog"
	"minisql/pkg/dberror"
	"minisql/pkg/logging"
	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

// Executor runs parsed statements against a catalog. It keeps no state
// between statements; the current database is passed in on every call.
//
// Statements are not serialized here. Callers that share an Executor
// between goroutines must run one statement at a time.
type Executor struct {
	catalog *catalog.Catalog
	coercer types.Coercer
}

// NewExecutor creates an executor over cat that coerces CHAR literals with
// coercer.
func NewExecutor(cat *catalog.Catalog, coercer types.Coercer) *Executor {
	return &Executor{catalog: cat, coercer: coercer}
}

// Catalog returns the catalog the executor runs against.
func (e *Executor) Catalog() *catalog.Catalog {
	return e.catalog
}

// Execute runs stmt with current as the selected database ("" for none).
// A failed statement has no effect on the catalog or on any table.
func (e *Executor) Execute(stmt statements.Statement, current string) (*Result, error) {
	if err := stmt.Validate(); err != nil {
		return nil, dberror.Wrap(err, dberror.KindSyntax, "Execute", "Executor")
	}
	if stmt.GetType().NeedsDatabase() && current == "" {
		return nil, dberror.NoDatabaseSelected()
	}

	var (
		res *Result
		err error
	)
	switch s := stmt.(type) {
	case *statements.CreateDatabaseStatement:
		res, err = e.createDatabase(s)
	case *statements.DropDatabaseStatement:
		res, err = e.dropDatabase(s, current)
	case *statements.CreateStatement:
		res, err = e.createTable(s, current)
	case *statements.DropStatement:
		res, err = e.dropTable(s, current)
	case *statements.InsertStatement:
		res, err = e.insert(s, current)
	case *statements.UpdateStatement:
		res, err = e.update(s, current)
	case *statements.SelectStatement:
		res, err = e.query(s, current)
	default:
		return nil, dberror.Newf(dberror.KindUnsupported, "statement %s is not supported", stmt.GetType())
	}
	if err != nil {
		return nil, err
	}

	level := slog.LevelDebug
	if stmt.GetType().IsDDL() {
		level = slog.LevelInfo
	}
	logging.WithStatement(stmt.GetType().String(), current).Log(context.Background(), level,
		"statement executed", "rows", res.RowsAffected+len(res.Rows))
	return res, nil
}

// resolveTable resolves a table of the current database.
func (e *Executor) resolveTable(current, name string) (*catalog.Table, error) {
	return e.catalog.ResolveTable(current, name)
}
