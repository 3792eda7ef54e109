package statements

import "strings"

// statementBuilder wraps strings.Builder with helpers that eliminate
// the repetitive if-then-WriteString pattern in Statement.String() methods.
type statementBuilder struct {
	strings.Builder
}

// writeList appends items separated by ", ".
func (b *statementBuilder) writeList(items []string) {
	b.WriteString(strings.Join(items, ", "))
}

// writeClause appends " keyword value" only when value is non-empty.
func (b *statementBuilder) writeClause(keyword, value string) {
	if value != "" {
		b.WriteString(" " + keyword + " " + value)
	}
}

// BaseStatement provides common functionality for all statement types
type BaseStatement struct {
	stmtType StatementType
}

func NewBaseStatement(stmtType StatementType) BaseStatement {
	return BaseStatement{stmtType: stmtType}
}

func (bs *BaseStatement) GetType() StatementType {
	return bs.stmtType
}

func (bs *BaseStatement) statement() {}

// TableStatement provides common functionality for statements that operate on a single table
type TableStatement struct {
	BaseStatement
	TableName string
}

// NewTableStatement creates a new table statement
func NewTableStatement(stmtType StatementType, tableName string) TableStatement {
	return TableStatement{
		BaseStatement: NewBaseStatement(stmtType),
		TableName:     tableName,
	}
}

// requireNonEmpty returns a ValidationError when value is empty.
func (bs *BaseStatement) requireNonEmpty(fieldName, value, msg string) error {
	if value == "" {
		return NewValidationError(bs.stmtType, fieldName, msg)
	}
	return nil
}

// requireNonEmptySlice returns a ValidationError when length is zero.
func (bs *BaseStatement) requireNonEmptySlice(fieldName string, length int, msg string) error {
	if length == 0 {
		return NewValidationError(bs.stmtType, fieldName, msg)
	}
	return nil
}
