package lexer

type TokenType int

const (
	CREATE TokenType = iota
	DATABASE
	TABLE
	DROP
	INSERT
	INTO
	VALUES
	UPDATE
	SET
	WHERE
	SELECT
	FROM

	INT
	CHAR

	// RESERVED is a recognised SQL keyword outside the supported grammar,
	// e.g. AND, JOIN or ORDER. Value holds the upper-cased word.
	RESERVED

	NUMBER
	STRING
	IDENTIFIER

	EQUALS
	OPERATOR
	STAR
	COMMA
	SEMICOLON
	LPAREN
	RPAREN

	EOF
)

func (t TokenType) String() string {
	switch t {
	case CREATE:
		return "CREATE"
	case DATABASE:
		return "DATABASE"
	case TABLE:
		return "TABLE"
	case DROP:
		return "DROP"
	case INSERT:
		return "INSERT"
	case INTO:
		return "INTO"
	case VALUES:
		return "VALUES"
	case UPDATE:
		return "UPDATE"
	case SET:
		return "SET"
	case WHERE:
		return "WHERE"
	case SELECT:
		return "SELECT"
	case FROM:
		return "FROM"
	case INT:
		return "INT"
	case CHAR:
		return "CHAR"
	case RESERVED:
		return "RESERVED"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case IDENTIFIER:
		return "IDENTIFIER"
	case EQUALS:
		return "EQUALS"
	case OPERATOR:
		return "OPERATOR"
	case STAR:
		return "STAR"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// IsKeyword reports whether t is one of the supported statement keywords.
func (t TokenType) IsKeyword() bool {
	return t >= CREATE && t <= CHAR
}

type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// Describe renders the token for error messages: keywords by name, other
// tokens by their text.
func (t Token) Describe() string {
	switch {
	case t.Type == EOF:
		return "end of input"
	case t.Type.IsKeyword(), t.Type == RESERVED:
		return t.Value
	default:
		return "'" + t.Value + "'"
	}
}
