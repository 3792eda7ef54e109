// Package storage is the root of minisql's paged storage engine.
//
// Each table owns one store: a sequence of fixed-size 4 KB pages identified
// by a storage id. A Backend decides where those pages live.
//
// # Sub-packages
//
//   - [minisql/pkg/storage/page] – the Page type, the Pager interface and its
//     in-memory and file implementations.
//   - [minisql/pkg/storage/heap] – HeapFile: fixed-width records packed into
//     pages, with append, restartable scans and in-place field updates.
//
// # Page layout
//
// Every page starts with a 4-byte header holding the record count. Records
// follow back to back; a record never spans two pages. Pages are written
// through synchronously; there is no buffer pool and no write-ahead log.
package storage
