package statements

// DropStatement represents a SQL DROP TABLE statement
type DropStatement struct {
	TableStatement
}

// NewDropStatement creates a new DROP TABLE statement
func NewDropStatement(tableName string) *DropStatement {
	return &DropStatement{
		TableStatement: NewTableStatement(DropTable, tableName),
	}
}

func (dts *DropStatement) Validate() error {
	return dts.requireNonEmpty("TableName", dts.TableName, "table name cannot be empty")
}

// String returns a string representation of the DROP TABLE statement
func (dts *DropStatement) String() string {
	return "DROP TABLE " + dts.TableName
}
