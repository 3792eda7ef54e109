package statements

import (
	"fmt"
	"strings"
)

// UpdateStatement represents UPDATE <table> SET <col> = <lit> WHERE <col> = <lit>.
// The grammar has exactly one assignment and a mandatory WHERE clause.
type UpdateStatement struct {
	TableStatement
	Set   Assignment
	Where *Predicate
}

// NewUpdateStatement creates a new UPDATE statement
func NewUpdateStatement(tableName string, set Assignment, where *Predicate) *UpdateStatement {
	return &UpdateStatement{
		TableStatement: NewTableStatement(Update, tableName),
		Set:            set,
		Where:          where,
	}
}

// Validate checks if the statement is valid
func (us *UpdateStatement) Validate() error {
	if err := us.requireNonEmpty("TableName", us.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if err := us.requireNonEmpty("Set.Column", us.Set.Column, "field name cannot be empty"); err != nil {
		return err
	}
	if us.Where == nil {
		return NewValidationError(Update, "Where", "WHERE clause is required")
	}
	return us.requireNonEmpty("Where.Column", us.Where.Column, "field name cannot be empty")
}

// String returns a string representation of the UPDATE statement
func (us *UpdateStatement) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("UPDATE %s SET %s", us.TableName, us.Set))

	if us.Where != nil {
		sb.WriteString(fmt.Sprintf(" WHERE %s", us.Where))
	}

	return sb.String()
}
