package parser

import (
	"minisql/pkg/dberror"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// parseSelectStatement parses SELECT col1, col2, ... FROM table_name [WHERE column = value].
func parseSelectStatement(l *lexer.Lexer) (*statements.SelectStatement, error) {
	if err := expectTokenSequence(l, lexer.SELECT); err != nil {
		return nil, err
	}

	columns, err := parseDelimitedList(l, parseColumnName, lexer.FROM, "FROM")
	if err != nil {
		return nil, err
	}

	table, err := parseIdentifier(l, "table name")
	if err != nil {
		return nil, err
	}

	if token, more, err := peekIs(l, lexer.COMMA); err != nil {
		return nil, err
	} else if more {
		return nil, dberror.Unsupported(token.Position, "multiple tables in FROM")
	}

	where, err := parseOptionalWhereClause(l)
	if err != nil {
		return nil, err
	}

	return statements.NewSelectStatement(table.Value, columns, where), nil
}

func parseColumnName(l *lexer.Lexer) (string, error) {
	token, err := parseIdentifier(l, "column name")
	if err != nil {
		return "", err
	}
	return token.Value, nil
}
