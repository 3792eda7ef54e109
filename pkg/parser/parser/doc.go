// Package parser converts SQL text into an abstract syntax tree (AST).
//
// ParseStatement is the entry point for a single statement; Script and
// ParseScript handle input holding several. Both drive the lexer and return
// typed statements.Statement values that the executor type-switches on.
//
// # Supported statements
//
//   - CREATE DATABASE name / DROP DATABASE name
//   - CREATE TABLE name (col INT, col CHAR(n), ...) / DROP TABLE name
//   - INSERT INTO name VALUES (literal, ...)
//   - UPDATE name SET col = literal WHERE col = literal
//   - SELECT col, ... FROM name [WHERE col = literal]
//
// Every statement ends with ';'.
//
// # Usage
//
//	stmt, err := parser.ParseStatement("SELECT id, name FROM users WHERE id = 1;")
//	if err != nil {
//	    return err
//	}
//	// Type-switch on *statements.SelectStatement, *statements.InsertStatement, etc.
//
// # Error handling
//
// Parsing is purely syntactic: table and column names are not resolved and
// value counts are not checked. Malformed input yields a SYNTAX_ERROR naming
// the expected construct and the token found. Constructs outside the grammar
// (AND/OR, comparison operators other than '=', '*', joins, subqueries,
// column lists on INSERT, multiple SET assignments, unknown statements)
// yield UNSUPPORTED_STATEMENT. Both carry the token's character offset.
package parser
