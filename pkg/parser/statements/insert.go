package statements

import (
	"minisql/pkg/types"
)

// InsertStatement represents INSERT INTO <table> VALUES (<literal>, ...).
// Values are positional; their count is checked against the table later.
type InsertStatement struct {
	TableStatement
	Values []types.Literal
}

// NewInsertStatement creates a new INSERT statement
func NewInsertStatement(tableName string) *InsertStatement {
	return &InsertStatement{
		TableStatement: NewTableStatement(Insert, tableName),
		Values:         make([]types.Literal, 0),
	}
}

// AddValue appends one positional value
func (s *InsertStatement) AddValue(value types.Literal) {
	s.Values = append(s.Values, value)
}

// Validate checks if the statement is valid
func (s *InsertStatement) Validate() error {
	if err := s.requireNonEmpty("TableName", s.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	return s.requireNonEmptySlice("Values", len(s.Values), "at least one value is required")
}

func (s *InsertStatement) String() string {
	var sb statementBuilder
	sb.WriteString("INSERT INTO " + s.TableName + " VALUES (")

	vals := make([]string, len(s.Values))
	for i, v := range s.Values {
		vals[i] = v.String()
	}
	sb.writeList(vals)
	sb.WriteString(")")
	return sb.String()
}
