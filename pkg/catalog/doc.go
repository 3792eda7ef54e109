// Package catalog maintains the registry of databases, their tables and each
// table's ordered column definitions.
//
// The catalog exclusively owns every table's heap. Other packages resolve
// tables by name for the duration of a single statement:
//
//	cat, _ := catalog.New(storage.NewMemoryBackend(), nil)
//	_ = cat.CreateDatabase("shop")
//	_, _ = cat.CreateTable("shop", "users", []catalog.Column{
//		{Name: "id", Type: types.Int()},
//		{Name: "name", Type: types.Char(10)},
//	})
//	users, _ := cat.ResolveTable("shop", "users")
//	idx, col, _ := users.ResolveColumn("name")
//
// With a Manifest the schema survives restarts: every successful DDL
// operation is written through, and a failed write rolls the operation back.
package catalog
