package statements

type StatementType int

const (
	CreateDatabase StatementType = iota
	DropDatabase
	CreateTable
	DropTable
	Insert
	Update
	Select
)

func (st StatementType) String() string {
	switch st {
	case CreateDatabase:
		return "CREATE DATABASE"
	case DropDatabase:
		return "DROP DATABASE"
	case CreateTable:
		return "CREATE TABLE"
	case DropTable:
		return "DROP TABLE"
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// IsDDL returns true if the statement type is a DDL operation (CREATE, DROP)
func (st StatementType) IsDDL() bool {
	return st == CreateDatabase || st == DropDatabase || st == CreateTable || st == DropTable
}

// NeedsDatabase reports whether the statement runs inside the current database.
func (st StatementType) NeedsDatabase() bool {
	return st != CreateDatabase && st != DropDatabase
}

// Statement is the interface that all SQL statements implement. The set of
// implementations is closed: only this package can add one.
type Statement interface {
	// GetType returns the type of the statement
	GetType() StatementType
	// String returns a string representation of the statement
	String() string
	// Validate checks if the statement is well formed and returns an error if not
	Validate() error

	statement()
}
