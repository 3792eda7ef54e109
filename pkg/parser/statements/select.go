package statements

// SelectStatement represents SELECT <col>, ... FROM <table> [WHERE <col> = <lit>]
type SelectStatement struct {
	TableStatement
	Fields []string
	Where  *Predicate
}

func NewSelectStatement(tableName string, fields []string, where *Predicate) *SelectStatement {
	return &SelectStatement{
		TableStatement: NewTableStatement(Select, tableName),
		Fields:         fields,
		Where:          where,
	}
}

// HasWhereClause returns true if the statement has a WHERE clause
func (ss *SelectStatement) HasWhereClause() bool {
	return ss.Where != nil
}

func (ss *SelectStatement) Validate() error {
	if err := ss.requireNonEmpty("TableName", ss.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if err := ss.requireNonEmptySlice("Fields", len(ss.Fields), "at least one column is required"); err != nil {
		return err
	}
	if ss.Where != nil {
		return ss.requireNonEmpty("Where.Column", ss.Where.Column, "field name cannot be empty")
	}
	return nil
}

func (ss *SelectStatement) String() string {
	var sb statementBuilder
	sb.WriteString("SELECT ")
	sb.writeList(ss.Fields)
	sb.writeClause("FROM", ss.TableName)
	if ss.Where != nil {
		sb.writeClause("WHERE", ss.Where.String())
	}
	return sb.String()
}
