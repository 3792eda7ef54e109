package parser

import (
	"minisql/pkg/dberror"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// parseInsertStatement parses INSERT INTO table_name VALUES (v1, v2, ...).
// Values are positional: a column list and multi-row VALUES are rejected.
func parseInsertStatement(l *lexer.Lexer) (*statements.InsertStatement, error) {
	if err := expectTokenSequence(l, lexer.INSERT, lexer.INTO); err != nil {
		return nil, err
	}

	name, err := parseIdentifier(l, "table name")
	if err != nil {
		return nil, err
	}
	stmt := statements.NewInsertStatement(name.Value)

	token, err := l.NextToken()
	if err != nil {
		return nil, err
	}
	switch token.Type {
	case lexer.VALUES:
	case lexer.LPAREN:
		return nil, dberror.Unsupported(token.Position, "column list in INSERT")
	case lexer.SELECT:
		return nil, dberror.Unsupported(token.Position, "INSERT ... SELECT")
	default:
		return nil, unexpected(token, "VALUES")
	}

	if _, err := expectToken(l, lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}

	values, err := parseDelimitedList(l, parseLiteral, lexer.RPAREN, "')'")
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		stmt.AddValue(v)
	}

	if token, more, err := peekIs(l, lexer.COMMA); err != nil {
		return nil, err
	} else if more {
		return nil, dberror.Unsupported(token.Position, "multi-row VALUES")
	}

	return stmt, nil
}
