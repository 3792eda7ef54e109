package parser

import (
	"fmt"

	"minisql/pkg/dberror"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

// unexpected builds the error for a token that does not fit the grammar at
// this point. Tokens that only exist for constructs outside the grammar
// (reserved words, comparison operators, '*') are reported as unsupported;
// anything else is a syntax error naming what was expected.
func unexpected(t lexer.Token, expected string) error {
	switch t.Type {
	case lexer.RESERVED:
		return dberror.Unsupported(t.Position, t.Value)
	case lexer.OPERATOR:
		return dberror.Unsupported(t.Position, fmt.Sprintf("operator '%s'", t.Value))
	case lexer.STAR:
		return dberror.Unsupported(t.Position, "'*'")
	default:
		return dberror.Syntax(t.Position, expected, t.Describe())
	}
}

// expectToken reads the next token and validates that it has the expected type.
// what names the expected construct in the error message.
func expectToken(l *lexer.Lexer, expected lexer.TokenType, what string) (lexer.Token, error) {
	token, err := l.NextToken()
	if err != nil {
		return token, err
	}
	if token.Type != expected {
		return token, unexpected(token, what)
	}
	return token, nil
}

// expectTokenSequence validates that the lexer produces a sequence of tokens
// matching the expected token types in order.
func expectTokenSequence(l *lexer.Lexer, expectedTypes ...lexer.TokenType) error {
	for _, expectedType := range expectedTypes {
		if _, err := expectToken(l, expectedType, expectedType.String()); err != nil {
			return err
		}
	}
	return nil
}

// parseIdentifier reads a single identifier such as a table or column name.
func parseIdentifier(l *lexer.Lexer, what string) (lexer.Token, error) {
	return expectToken(l, lexer.IDENTIFIER, what)
}

// parseLiteral reads an integer or quoted string constant.
func parseLiteral(l *lexer.Lexer) (types.Literal, error) {
	token, err := l.NextToken()
	if err != nil {
		return types.Literal{}, err
	}

	switch token.Type {
	case lexer.NUMBER:
		return types.Literal{Kind: types.IntLiteral, Text: token.Value, Pos: token.Position}, nil
	case lexer.STRING:
		return types.Literal{Kind: types.StringLiteral, Text: token.Value, Pos: token.Position}, nil
	case lexer.SELECT, lexer.LPAREN:
		return types.Literal{}, dberror.Unsupported(token.Position, "subquery")
	default:
		return types.Literal{}, unexpected(token, "literal")
	}
}

// parseEquality parses "<column> = <literal>", the shape shared by SET
// assignments and WHERE predicates.
func parseEquality(l *lexer.Lexer) (column lexer.Token, value types.Literal, err error) {
	column, err = parseIdentifier(l, "column name")
	if err != nil {
		return column, value, err
	}
	if _, err = expectToken(l, lexer.EQUALS, "'='"); err != nil {
		return column, value, err
	}
	value, err = parseLiteral(l)
	return column, value, err
}

// parseWhereCondition parses the predicate that follows WHERE.
func parseWhereCondition(l *lexer.Lexer) (*statements.Predicate, error) {
	column, value, err := parseEquality(l)
	if err != nil {
		return nil, err
	}
	return statements.NewPredicate(column.Value, value, column.Position), nil
}

// parseOptionalWhereClause parses a WHERE clause if one follows. If the next
// token is not WHERE it is put back and nil is returned.
func parseOptionalWhereClause(l *lexer.Lexer) (*statements.Predicate, error) {
	token, err := l.NextToken()
	if err != nil {
		return nil, err
	}
	if token.Type != lexer.WHERE {
		l.SetPos(token.Position)
		return nil, nil
	}
	return parseWhereCondition(l)
}

// parseDelimitedList is a generic helper for parsing comma-separated lists with terminators.
// It repeatedly calls parseItem until it encounters the terminator token.
func parseDelimitedList[T any](
	l *lexer.Lexer,
	parseItem func(*lexer.Lexer) (T, error),
	terminator lexer.TokenType,
	terminatorName string,
) ([]T, error) {
	var items []T

	for {
		item, err := parseItem(l)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		token, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		switch token.Type {
		case lexer.COMMA:
			continue
		case terminator:
			return items, nil
		case lexer.LPAREN:
			return nil, dberror.Unsupported(token.Position, "function call")
		default:
			return nil, unexpected(token, "',' or "+terminatorName)
		}
	}
}

// peekIs reports whether the next token has type t without consuming it.
func peekIs(l *lexer.Lexer, t lexer.TokenType) (lexer.Token, bool, error) {
	token, err := l.NextToken()
	if err != nil {
		return token, false, err
	}
	l.SetPos(token.Position)
	return token, token.Type == t, nil
}
