package parser

import (
	"errors"
	"testing"

	"minisql/pkg/dberror"
	"minisql/pkg/parser/statements"
	"minisql/pkg/types"
)

func TestParseStatement_DatabaseStatements(t *testing.T) {
	stmt, err := ParseStatement("create database Shop;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	create, ok := stmt.(*statements.CreateDatabaseStatement)
	if !ok {
		t.Fatalf("expected CreateDatabaseStatement, got %T", stmt)
	}
	if create.Name != "Shop" {
		t.Errorf("expected name 'Shop', got %s", create.Name)
	}

	stmt, err = ParseStatement("DROP DATABASE shop ;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if drop, ok := stmt.(*statements.DropDatabaseStatement); !ok || drop.Name != "shop" {
		t.Errorf("unexpected statement %#v", stmt)
	}
}

func TestParseStatement_CreateTable(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		table string
		cols  []statements.FieldDefinition
	}{
		{
			name:  "two columns",
			sql:   "CREATE TABLE users (id INT, name CHAR(10));",
			table: "users",
			cols: []statements.FieldDefinition{
				{Name: "id", Type: types.Int(), Pos: 20},
				{Name: "name", Type: types.Char(10), Pos: 28},
			},
		},
		{
			name:  "trailing comma",
			sql:   "CREATE TABLE t (a int,);",
			table: "t",
			cols:  []statements.FieldDefinition{{Name: "a", Type: types.Int(), Pos: 16}},
		},
		{
			name:  "zero length char is left to the catalog",
			sql:   "CREATE TABLE t (a CHAR(0));",
			table: "t",
			cols:  []statements.FieldDefinition{{Name: "a", Type: types.Char(0), Pos: 16}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseStatement(tt.sql)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			create, ok := stmt.(*statements.CreateStatement)
			if !ok {
				t.Fatalf("expected CreateStatement, got %T", stmt)
			}
			if create.TableName != tt.table {
				t.Errorf("table = %s, want %s", create.TableName, tt.table)
			}
			if len(create.Fields) != len(tt.cols) {
				t.Fatalf("got %d columns, want %d", len(create.Fields), len(tt.cols))
			}
			for i, f := range create.Fields {
				if f != tt.cols[i] {
					t.Errorf("column %d = %+v, want %+v", i, f, tt.cols[i])
				}
			}
		})
	}
}

func TestParseStatement_Insert(t *testing.T) {
	stmt, err := ParseStatement("INSERT INTO users VALUES (1, 'alice', -5, \"x y\");")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	insert, ok := stmt.(*statements.InsertStatement)
	if !ok {
		t.Fatalf("expected InsertStatement, got %T", stmt)
	}

	want := []types.Literal{
		{Kind: types.IntLiteral, Text: "1", Pos: 26},
		{Kind: types.StringLiteral, Text: "alice", Pos: 29},
		{Kind: types.IntLiteral, Text: "-5", Pos: 38},
		{Kind: types.StringLiteral, Text: "x y", Pos: 42},
	}
	if insert.TableName != "users" || len(insert.Values) != len(want) {
		t.Fatalf("unexpected statement: %s", insert)
	}
	for i, v := range insert.Values {
		if v != want[i] {
			t.Errorf("value %d = %+v, want %+v", i, v, want[i])
		}
	}
}

func TestParseStatement_Update(t *testing.T) {
	stmt, err := ParseStatement("UPDATE users SET name = 'bob' WHERE id = 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	update, ok := stmt.(*statements.UpdateStatement)
	if !ok {
		t.Fatalf("expected UpdateStatement, got %T", stmt)
	}
	if update.TableName != "users" {
		t.Errorf("table = %s", update.TableName)
	}
	if update.Set.Column != "name" || update.Set.Value.Text != "bob" || update.Set.Value.Kind != types.StringLiteral {
		t.Errorf("unexpected SET clause %s", update.Set)
	}
	if update.Where == nil || update.Where.Column != "id" || update.Where.Value.Text != "1" {
		t.Errorf("unexpected WHERE clause %v", update.Where)
	}
}

func TestParseStatement_Select(t *testing.T) {
	tests := []struct {
		sql     string
		columns []string
		table   string
		where   string
	}{
		{"SELECT name FROM users WHERE id = 1;", []string{"name"}, "users", "id = 1"},
		{"select id, name from users;", []string{"id", "name"}, "users", ""},
		{"SELECT name, name FROM u WHERE name = 'x';", []string{"name", "name"}, "u", "name = 'x'"},
		{"SELECT a FROM t -- all rows\n;", []string{"a"}, "t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			stmt, err := ParseStatement(tt.sql)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sel, ok := stmt.(*statements.SelectStatement)
			if !ok {
				t.Fatalf("expected SelectStatement, got %T", stmt)
			}
			if sel.TableName != tt.table {
				t.Errorf("table = %s, want %s", sel.TableName, tt.table)
			}
			if len(sel.Fields) != len(tt.columns) {
				t.Fatalf("columns = %v, want %v", sel.Fields, tt.columns)
			}
			for i := range sel.Fields {
				if sel.Fields[i] != tt.columns[i] {
					t.Errorf("column %d = %s, want %s", i, sel.Fields[i], tt.columns[i])
				}
			}
			got := ""
			if sel.HasWhereClause() {
				got = sel.Where.String()
			}
			if got != tt.where {
				t.Errorf("where = %q, want %q", got, tt.where)
			}
		})
	}
}

func TestParseStatement_Errors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		kind error
		pos  int
	}{
		{"empty", "", dberror.ErrSyntax, 0},
		{"only whitespace", "  -- nothing\n", dberror.ErrSyntax, 13},
		{"empty statement", ";", dberror.ErrSyntax, 0},
		{"missing semicolon", "DROP TABLE t", dberror.ErrSyntax, 12},
		{"two statements", "DROP TABLE t; DROP TABLE u;", dberror.ErrSyntax, 14},
		{"create without object", "CREATE users;", dberror.ErrSyntax, 7},
		{"keyword as table name", "DROP TABLE select;", dberror.ErrSyntax, 11},
		{"empty column list", "CREATE TABLE t ();", dberror.ErrSyntax, 16},
		{"double comma", "CREATE TABLE t (a INT,, b INT);", dberror.ErrSyntax, 22},
		{"unknown type", "CREATE TABLE t (a TEXT);", dberror.ErrSyntax, 18},
		{"char without length", "CREATE TABLE t (a CHAR);", dberror.ErrSyntax, 22},
		{"char with string length", "CREATE TABLE t (a CHAR('3'));", dberror.ErrSyntax, 23},
		{"huge char length", "CREATE TABLE t (a CHAR(99999999999));", dberror.ErrInvalidType, 23},
		{"missing values keyword", "INSERT INTO t (1);", dberror.ErrUnsupported, 14},
		{"insert identifier value", "INSERT INTO t VALUES (a);", dberror.ErrSyntax, 22},
		{"update without where", "UPDATE t SET a = 1;", dberror.ErrSyntax, 18},
		{"unterminated string", "INSERT INTO t VALUES ('abc);", dberror.ErrLex, 22},
		{"illegal character", "SELECT a FROM t WHERE a = 1 & 2;", dberror.ErrLex, 28},

		{"compound predicate", "SELECT a FROM t WHERE a = 1 AND b = 2;", dberror.ErrUnsupported, 28},
		{"or predicate", "UPDATE t SET a = 1 WHERE a = 2 OR a = 3;", dberror.ErrUnsupported, 31},
		{"star projection", "SELECT * FROM t;", dberror.ErrUnsupported, 7},
		{"comparison operator", "SELECT a FROM t WHERE a > 1;", dberror.ErrUnsupported, 24},
		{"insert column list", "INSERT INTO t (a) VALUES (1);", dberror.ErrUnsupported, 14},
		{"insert select", "INSERT INTO t SELECT a FROM u;", dberror.ErrUnsupported, 14},
		{"multi-row insert", "INSERT INTO t VALUES (1), (2);", dberror.ErrUnsupported, 24},
		{"subquery", "SELECT a FROM t WHERE a = (SELECT b FROM u);", dberror.ErrUnsupported, 26},
		{"multiple assignments", "UPDATE t SET a = 1, b = 2 WHERE a = 1;", dberror.ErrUnsupported, 18},
		{"join", "SELECT a FROM t JOIN u;", dberror.ErrUnsupported, 16},
		{"multiple tables", "SELECT a FROM t, u;", dberror.ErrUnsupported, 15},
		{"order by", "SELECT a FROM t ORDER BY a;", dberror.ErrUnsupported, 16},
		{"aggregate", "SELECT COUNT(a) FROM t;", dberror.ErrUnsupported, 12},
		{"delete", "DELETE FROM t;", dberror.ErrUnsupported, 0},
		{"unknown statement", "VACUUM t;", dberror.ErrUnsupported, 0},
		{"create index", "CREATE INDEX i ON t (a);", dberror.ErrUnsupported, 7},
		{"transaction", "BEGIN;", dberror.ErrUnsupported, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseStatement(tt.sql)
			if err == nil {
				t.Fatalf("expected error, got statement %v", stmt)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error = %v, want kind %v", err, tt.kind)
			}
			var dbErr *dberror.DBError
			if !errors.As(err, &dbErr) {
				t.Fatalf("expected *DBError, got %T", err)
			}
			if dbErr.Position != tt.pos {
				t.Errorf("Position = %d, want %d (%v)", dbErr.Position, tt.pos, err)
			}
		})
	}
}

func TestParseStatement_SyntaxErrorNamesExpectedAndFound(t *testing.T) {
	_, err := ParseStatement("SELECT name FROM ;")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "[SYNTAX_ERROR] expected table name, got ';' (at position 17)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseScript(t *testing.T) {
	stmts, err := ParseScript(`
		CREATE DATABASE d;;
		CREATE TABLE users (id INT, name CHAR(10));
		-- seed data
		INSERT INTO users VALUES (1, 'alice');
		SELECT name FROM users WHERE id = 1;
	`)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	want := []statements.StatementType{
		statements.CreateDatabase, statements.CreateTable, statements.Insert, statements.Select,
	}
	if len(stmts) != len(want) {
		t.Fatalf("got %d statements, want %d", len(stmts), len(want))
	}
	for i, s := range stmts {
		if s.GetType() != want[i] {
			t.Errorf("statement %d = %s, want %s", i, s.GetType(), want[i])
		}
	}
}

func TestScript_StopsAtFirstError(t *testing.T) {
	s := NewScript("DROP TABLE a; DROP TABLE; DROP TABLE c;")

	first, err := s.Next()
	if err != nil || first == nil {
		t.Fatalf("first statement: %v, %v", first, err)
	}

	_, err = s.Next()
	if !errors.Is(err, dberror.ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}

	if stmt, err := s.Next(); stmt != nil || err != nil {
		t.Errorf("script should be finished, got %v, %v", stmt, err)
	}
}

func TestParseScript_Empty(t *testing.T) {
	stmts, err := ParseScript("  ;; -- nothing here")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(stmts) != 0 {
		t.Errorf("expected no statements, got %d", len(stmts))
	}
}
