package parser

import (
	"strconv"

	"minisql/pkg/dberror"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

// parseCreateStatement parses CREATE DATABASE name or CREATE TABLE name (...).
func parseCreateStatement(l *lexer.Lexer) (statements.Statement, error) {
	if err := expectTokenSequence(l, lexer.CREATE); err != nil {
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
		return statements.NewCreateDatabaseStatement(name.Value), nil
	case lexer.TABLE:
		return asStatement(parseCreateTable(l))
	default:
		return nil, unexpected(token, "DATABASE or TABLE")
	}
}

// parseCreateTable parses the part after CREATE TABLE:
//
//	table_name (col1 type1, col2 type2, ...)
//
// A trailing comma before ')' is accepted; an empty column list or two
// commas in a row are not.
func parseCreateTable(l *lexer.Lexer) (*statements.CreateStatement, error) {
	name, err := parseIdentifier(l, "table name")
	if err != nil {
		return nil, err
	}
	stmt := statements.NewCreateStatement(name.Value)

	if _, err := expectToken(l, lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}

	for {
		token, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		if token.Type == lexer.RPAREN && len(stmt.Fields) > 0 {
			return stmt, nil
		}
		if token.Type != lexer.IDENTIFIER {
			return nil, unexpected(token, "column name")
		}

		fieldType, err := parseDataType(l, token.Value)
		if err != nil {
			return nil, err
		}
		stmt.AddField(token.Value, fieldType, token.Position)

		token, err = l.NextToken()
		if err != nil {
			return nil, err
		}
		switch token.Type {
		case lexer.COMMA:
			continue
		case lexer.RPAREN:
			return stmt, nil
		default:
			return nil, unexpected(token, "',' or ')'")
		}
	}
}

// parseDataType parses INT or CHAR(n). The CHAR length is taken as written;
// whether it is usable is decided by the catalog.
func parseDataType(l *lexer.Lexer, column string) (types.ColumnType, error) {
	token, err := l.NextToken()
	if err != nil {
		return types.ColumnType{}, err
	}

	switch token.Type {
	case lexer.INT:
		return types.Int(), nil
	case lexer.CHAR:
		if _, err := expectToken(l, lexer.LPAREN, "'('"); err != nil {
			return types.ColumnType{}, err
		}
		size, err := expectToken(l, lexer.NUMBER, "CHAR length")
		if err != nil {
			return types.ColumnType{}, err
		}
		n, convErr := strconv.Atoi(size.Value)
		if convErr != nil || n != int(int32(n)) {
			return types.ColumnType{}, dberror.InvalidType(column, "CHAR length "+size.Value+" is out of range").At(size.Position)
		}
		if _, err := expectToken(l, lexer.RPAREN, "')'"); err != nil {
			return types.ColumnType{}, err
		}
		return types.Char(n), nil
	default:
		return types.ColumnType{}, unexpected(token, "column type INT or CHAR(n)")
	}
}
