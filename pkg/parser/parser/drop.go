package parser

import (
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// parseDropStatement parses DROP DATABASE name or DROP TABLE name.
func parseDropStatement(l *lexer.Lexer) (statements.Statement, error) {
	if err := expectTokenSequence(l, lexer.DROP); err != nil {
		return nil, err
	}

	token, err := l.NextToken()
	if err != nil {
		return nil, err
	}

	switch token.Type {
	case lexer.DATABASE:
		name, err := parseIdentifier(l, "database name")
		if err != nil {
			return nil, err
		}
		return statements.NewDropDatabaseStatement(name.Value), nil
	case lexer.TABLE:
		name, err := parseIdentifier(l, "table name")
		if err != nil {
			return nil, err
		}
		return statements.NewDropStatement(name.Value), nil
	default:
		return nil, unexpected(token, "DATABASE or TABLE")
	}
}
