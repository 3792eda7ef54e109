package parser

import (
	"minisql/pkg/dberror"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// parseUpdateStatement parses a SQL UPDATE statement from the lexer.
// It expects the format: UPDATE table_name SET column = value WHERE column = value
// Exactly one assignment is allowed and the WHERE clause is mandatory.
func parseUpdateStatement(l *lexer.Lexer) (*statements.UpdateStatement, error) {
	if err := expectTokenSequence(l, lexer.UPDATE); err != nil {
		return nil, err
	}

	name, err := parseIdentifier(l, "table name")
	if err != nil {
		return nil, err
	}

	if _, err := expectToken(l, lexer.SET, "SET"); err != nil {
		return nil, err
	}

	column, value, err := parseEquality(l)
	if err != nil {
		return nil, err
	}
	set := statements.Assignment{Column: column.Value, Value: value, Pos: column.Position}

	token, err := l.NextToken()
	if err != nil {
		return nil, err
	}
	switch token.Type {
	case lexer.WHERE:
	case lexer.COMMA:
		return nil, dberror.Unsupported(token.Position, "multiple assignments in SET")
	default:
		return nil, unexpected(token, "WHERE")
	}

	where, err := parseWhereCondition(l)
	if err != nil {
		return nil, err
	}

	return statements.NewUpdateStatement(name.Value, set, where), nil
}
