package dberror

import "fmt"

// Kind identifies the class of a statement failure. A Kind is itself an
// error so that callers can write errors.Is(err, dberror.ErrNotFound).
type Kind string

const (
	KindLex                Kind = "LEX_ERROR"
	KindSyntax             Kind = "SYNTAX_ERROR"
	KindUnsupported        Kind = "UNSUPPORTED_STATEMENT"
	KindAlreadyExists      Kind = "ALREADY_EXISTS"
	KindNotFound           Kind = "NOT_FOUND"
	KindNoDatabaseSelected Kind = "NO_DATABASE_SELECTED"
	KindDuplicateColumn    Kind = "DUPLICATE_COLUMN"
	KindInvalidType        Kind = "INVALID_TYPE"
	KindArityMismatch      Kind = "ARITY_MISMATCH"
	KindTypeMismatch       Kind = "TYPE_MISMATCH"
	KindLengthExceeded     Kind = "LENGTH_EXCEEDED"
	KindDatabaseInUse      Kind = "DATABASE_IN_USE"
	KindCorrupt            Kind = "CORRUPT_DATA"
	KindInternal           Kind = "INTERNAL"
)

// Sentinels for errors.Is.
var (
	ErrLex                error = KindLex
	ErrSyntax             error = KindSyntax
	ErrUnsupported        error = KindUnsupported
	ErrAlreadyExists      error = KindAlreadyExists
	ErrNotFound           error = KindNotFound
	ErrNoDatabaseSelected error = KindNoDatabaseSelected
	ErrDuplicateColumn    error = KindDuplicateColumn
	ErrInvalidType        error = KindInvalidType
	ErrArityMismatch      error = KindArityMismatch
	ErrTypeMismatch       error = KindTypeMismatch
	ErrLengthExceeded     error = KindLengthExceeded
	ErrDatabaseInUse      error = KindDatabaseInUse
	ErrCorrupt            error = KindCorrupt
	ErrInternal           error = KindInternal
)

func (k Kind) Error() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) category() ErrorCategory {
	switch k {
	case KindInternal:
		return ErrCategorySystem
	case KindCorrupt:
		return ErrCategoryData
	default:
		return ErrCategoryUser
	}
}

// LexError reports an illegal character or unterminated literal at pos.
func LexError(pos int, message string) *DBError {
	err := New(KindLex, message)
	err.Position = pos
	err.Component = "Lexer"
	return err
}

// Syntax reports that the parser expected one construct but found another.
func Syntax(pos int, expected, found string) *DBError {
	err := Newf(KindSyntax, "expected %s, got %s", expected, found)
	err.Position = pos
	err.Component = "Parser"
	return err
}

// Unsupported reports a construct outside the supported grammar.
func Unsupported(pos int, construct string) *DBError {
	err := Newf(KindUnsupported, "%s is not supported", construct)
	err.Position = pos
	err.Component = "Parser"
	return err
}

// AlreadyExists reports a name collision, e.g. AlreadyExists("table", "users").
func AlreadyExists(what, name string) *DBError {
	return Newf(KindAlreadyExists, "%s '%s' already exists", what, name)
}

// NotFound reports an unresolvable name, e.g. NotFound("column", "age").
func NotFound(what, name string) *DBError {
	return Newf(KindNotFound, "%s '%s' does not exist", what, name)
}

func NoDatabaseSelected() *DBError {
	return New(KindNoDatabaseSelected, "no database selected").
		WithHint("select a database before running table statements")
}

func DuplicateColumn(table, column string) *DBError {
	return Newf(KindDuplicateColumn, "column '%s' is declared more than once", column).
		WithDetail(fmt.Sprintf("table '%s'", table))
}

func InvalidType(column, detail string) *DBError {
	return Newf(KindInvalidType, "invalid type for column '%s'", column).WithDetail(detail)
}

func ArityMismatch(want, got int) *DBError {
	return Newf(KindArityMismatch, "expected %d values, got %d", want, got)
}

func TypeMismatch(column, want, literal string) *DBError {
	return Newf(KindTypeMismatch, "column '%s' expects %s", column, want).
		WithDetail(fmt.Sprintf("got %s", literal))
}

func LengthExceeded(column string, limit, got int) *DBError {
	return Newf(KindLengthExceeded, "value for column '%s' is %d bytes, limit is %d", column, got, limit)
}

func DatabaseInUse(name string) *DBError {
	return Newf(KindDatabaseInUse, "cannot drop the currently selected database '%s'", name)
}
