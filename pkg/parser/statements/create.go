package statements

import (
	"fmt"

	"minisql/pkg/types"
)

// FieldDefinition is one column of a CREATE TABLE statement. Type is taken
// verbatim from the statement; the catalog decides whether it is valid.
type FieldDefinition struct {
	Name string
	Type types.ColumnType
	Pos  int
}

// CreateStatement represents a SQL CREATE TABLE statement
type CreateStatement struct {
	TableStatement
	Fields []FieldDefinition
}

func NewCreateStatement(tableName string) *CreateStatement {
	return &CreateStatement{
		TableStatement: NewTableStatement(CreateTable, tableName),
		Fields:         make([]FieldDefinition, 0),
	}
}

func (cts *CreateStatement) AddField(name string, fieldType types.ColumnType, pos int) {
	cts.Fields = append(cts.Fields, FieldDefinition{
		Name: name,
		Type: fieldType,
		Pos:  pos,
	})
}

// Validate checks the statement's shape only. Duplicate names and bad CHAR
// lengths are catalog errors, not validation errors.
func (cts *CreateStatement) Validate() error {
	if err := cts.requireNonEmpty("TableName", cts.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if err := cts.requireNonEmptySlice("Fields", len(cts.Fields), "at least one column is required"); err != nil {
		return err
	}
	for i, f := range cts.Fields {
		if f.Name == "" {
			return NewValidationError(CreateTable, fmt.Sprintf("Fields[%d].Name", i), "column name cannot be empty")
		}
	}
	return nil
}

func (cts *CreateStatement) String() string {
	var sb statementBuilder
	sb.WriteString(fmt.Sprintf("CREATE TABLE %s (", cts.TableName))

	cols := make([]string, len(cts.Fields))
	for i, field := range cts.Fields {
		cols[i] = fmt.Sprintf("%s %s", field.Name, field.Type)
	}
	sb.writeList(cols)
	sb.WriteString(")")

	return sb.String()
}
