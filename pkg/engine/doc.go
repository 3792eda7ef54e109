// Package engine ties the lexer, parser, catalog, executor and storage
// together behind a single call:
//
//	eng, _ := engine.New(engine.Options{})
//	defer eng.Close()
//
//	_, _ = eng.Execute("CREATE DATABASE d;", "")
//	_, _ = eng.Execute("CREATE TABLE users (id INT, name CHAR(10));", "d")
//	res, err := eng.Execute("SELECT name FROM users WHERE id = 1;", "d")
//
// The second argument is the selected database. Session keeps it for
// clients that work in one database at a time.
package engine
