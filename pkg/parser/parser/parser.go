package parser

import (
	"minisql/pkg/dberror"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// ParseStatement parses exactly one SQL statement, including its terminating
// ';', and returns the corresponding Statement. Anything after the ';' other
// than whitespace and comments is a syntax error.
//
// Supported SQL statements:
//   - CREATE DATABASE / DROP DATABASE
//   - CREATE TABLE / DROP TABLE
//   - INSERT INTO ... VALUES (...)
//   - UPDATE ... SET ... WHERE ...
//   - SELECT ... FROM ... [WHERE ...]
//
// Errors are *dberror.DBError values of kind LEX_ERROR, SYNTAX_ERROR or
// UNSUPPORTED_STATEMENT carrying the character offset of the offending token.
func ParseStatement(sql string) (statements.Statement, error) {
	l := lexer.NewLexer(sql)

	stmt, err := parseNext(l)
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		return nil, dberror.Syntax(l.Position(), "statement", "end of input")
	}

	if _, err := expectToken(l, lexer.EOF, "end of input"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseNext parses one statement and its ';'. It returns nil, nil when the
// input holds no further tokens.
func parseNext(l *lexer.Lexer) (statements.Statement, error) {
	token, err := l.NextToken()
	if err != nil {
		return nil, err
	}

	var stmt statements.Statement
	switch token.Type {
	case lexer.EOF:
		return nil, nil
	case lexer.CREATE:
		l.SetPos(token.Position)
		stmt, err = parseCreateStatement(l)
	case lexer.DROP:
		l.SetPos(token.Position)
		stmt, err = parseDropStatement(l)
	case lexer.INSERT:
		l.SetPos(token.Position)
		stmt, err = asStatement(parseInsertStatement(l))
	case lexer.UPDATE:
		l.SetPos(token.Position)
		stmt, err = asStatement(parseUpdateStatement(l))
	case lexer.SELECT:
		l.SetPos(token.Position)
		stmt, err = asStatement(parseSelectStatement(l))
	case lexer.IDENTIFIER:
		return nil, dberror.Unsupported(token.Position, "statement '"+token.Value+"'")
	default:
		return nil, unexpected(token, "statement")
	}
	if err != nil {
		return nil, err
	}

	if _, err := expectToken(l, lexer.SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// asStatement converts a concrete parse result into the Statement interface
// without turning a nil pointer into a non-nil interface.
func asStatement[T statements.Statement](s T, err error) (statements.Statement, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
