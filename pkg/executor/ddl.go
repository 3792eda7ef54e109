package executor

import (
	"fmt"

	"minisql/pkg/catalog"
	"minisql/pkg/dberror"
	"minisql/pkg/parser/statements"
)

func (e *Executor) createDatabase(s *statements.CreateDatabaseStatement) (*Result, error) {
	if err := e.catalog.CreateDatabase(s.Name); err != nil {
		return nil, err
	}
	return ddlResult(s.GetType(), fmt.Sprintf("Database '%s' created", s.Name)), nil
}

// dropDatabase refuses to drop the database the caller is working in.
func (e *Executor) dropDatabase(s *statements.DropDatabaseStatement, current string) (*Result, error) {
	if !e.catalog.HasDatabase(s.Name) {
		return nil, dberror.NotFound("database", s.Name).In("DropDatabase", "Executor")
	}
	if s.Name == current {
		return nil, dberror.DatabaseInUse(s.Name).
			WithHint("switch to another database first")
	}
	if err := e.catalog.DropDatabase(s.Name); err != nil {
		return nil, err
	}
	return ddlResult(s.GetType(), fmt.Sprintf("Database '%s' dropped", s.Name)), nil
}

func (e *Executor) createTable(s *statements.CreateStatement, current string) (*Result, error) {
	columns := make([]catalog.Column, len(s.Fields))
	for i, f := range s.Fields {
		columns[i] = catalog.Column{Name: f.Name, Type: f.Type}
	}

	t, err := e.catalog.CreateTable(current, s.TableName, columns)
	if err != nil {
		return nil, err
	}
	return ddlResult(s.GetType(),
		fmt.Sprintf("Table '%s' created with %d column(s)", t.Name, t.NumColumns())), nil
}

func (e *Executor) dropTable(s *statements.DropStatement, current string) (*Result, error) {
	if err := e.catalog.DropTable(current, s.TableName); err != nil {
		return nil, err
	}
	return ddlResult(s.GetType(), fmt.Sprintf("Table '%s' dropped", s.TableName)), nil
}
