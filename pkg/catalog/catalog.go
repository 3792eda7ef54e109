package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"minisql/pkg/dberror"
	"minisql/pkg/logging"
	"minisql/pkg/storage"
	"minisql/pkg/storage/heap"
)

// Catalog is the registry of databases and their tables. It is the single
// owner of every Database, Table and heap; callers hold names, never
// pointers across statements.
//
// Every DDL operation validates completely before it mutates anything, so a
// failed operation leaves the catalog unchanged.
type Catalog struct {
	mu        sync.RWMutex
	backend   storage.Backend
	manifest  Manifest
	databases map[string]*Database
}

// New opens a catalog over backend. When manifest is non-nil the schema it
// holds is loaded and every DDL operation is written back to it.
func New(backend storage.Backend, manifest Manifest) (*Catalog, error) {
	if backend == nil {
		backend = storage.NewMemoryBackend()
	}
	c := &Catalog{
		backend:   backend,
		manifest:  manifest,
		databases: make(map[string]*Database),
	}
	if manifest == nil {
		return c, nil
	}

	snap, err := manifest.Load()
	if err != nil {
		return nil, err
	}
	if err := c.restore(snap); err != nil {
		_ = c.Close()
		return nil, err
	}
	logging.WithComponent("catalog").Debug("catalog loaded",
		"databases", len(c.databases))
	return c, nil
}

func (c *Catalog) restore(snap *Snapshot) error {
	for _, ds := range snap.Databases {
		db := newDatabase(ds.Name)
		c.databases[ds.Name] = db

		for _, ts := range ds.Tables {
			columns := make([]Column, len(ts.Columns))
			for i, cs := range ts.Columns {
				col, err := cs.column()
				if err != nil {
					return err
				}
				columns[i] = col
			}
			t, err := c.openTable(ts.Name, ts.StorageID, columns)
			if err != nil {
				return dberror.Wrap(err, dberror.KindInternal, "restore", "Catalog").
					WithDetail(fmt.Sprintf("table '%s' in database '%s'", ts.Name, ds.Name))
			}
			db.putTable(t)
		}
	}
	return nil
}

func (c *Catalog) openTable(name, storageID string, columns []Column) (*Table, error) {
	layout, err := layoutOf(columns)
	if err != nil {
		return nil, err
	}
	pager, err := c.backend.Open(storageID)
	if err != nil {
		return nil, err
	}
	hf, err := heap.NewHeapFile(pager, layout)
	if err != nil {
		_ = pager.Close()
		return nil, err
	}
	return newTable(name, storageID, columns, hf), nil
}

// CreateDatabase registers an empty database.
func (c *Catalog) CreateDatabase(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.databases[name]; ok {
		return dberror.AlreadyExists("database", name).In("CreateDatabase", "Catalog")
	}

	c.databases[name] = newDatabase(name)
	if err := c.persist(); err != nil {
		delete(c.databases, name)
		return err
	}

	logging.WithDatabase(name).Debug("database created")
	return nil
}

// DropDatabase removes a database together with all of its tables and rows.
func (c *Catalog) DropDatabase(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	db, ok := c.databases[name]
	if !ok {
		return dberror.NotFound("database", name).In("DropDatabase", "Catalog")
	}

	delete(c.databases, name)
	if err := c.persist(); err != nil {
		c.databases[name] = db
		return err
	}

	tables := db.allTables()
	var g errgroup.Group
	for _, t := range tables {
		g.Go(func() error {
			return c.release(t)
		})
	}
	if err := g.Wait(); err != nil {
		logging.WithError(err).Warn("failed to release table storage",
			"database", name)
	}

	logging.WithDatabase(name).Debug("database dropped", "tables", len(tables))
	return nil
}

// CreateTable creates table name in database dbName with the given columns.
//
// Checks run in this order: the database must exist, the table name must be
// free, column names must be unique and every column type must be valid.
func (c *Catalog) CreateTable(dbName, name string, columns []Column) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	db, ok := c.databases[dbName]
	if !ok {
		return nil, dberror.NotFound("database", dbName).In("CreateTable", "Catalog")
	}
	if _, exists := db.table(name); exists {
		return nil, dberror.AlreadyExists("table", name).
			WithDetail(fmt.Sprintf("database '%s'", dbName)).
			In("CreateTable", "Catalog")
	}
	if err := validateColumns(name, columns); err != nil {
		return nil, err
	}

	cols := slices.Clone(columns)
	t, err := c.openTable(name, uuid.NewString(), cols)
	if err != nil {
		return nil, dberror.Wrap(err, dberror.KindInternal, "CreateTable", "Catalog")
	}

	db.putTable(t)
	if err := c.persist(); err != nil {
		db.removeTable(name)
		if relErr := c.release(t); relErr != nil {
			logging.WithError(relErr).Warn("failed to release table storage",
				"database", dbName, "table", name)
		}
		return nil, err
	}

	logging.WithTable(dbName, name).Debug("table created",
		"columns", len(cols), "store", t.StorageID)
	return t, nil
}

// DropTable removes a table and its rows.
func (c *Catalog) DropTable(dbName, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	db, ok := c.databases[dbName]
	if !ok {
		return dberror.NotFound("database", dbName).In("DropTable", "Catalog")
	}
	t, ok := db.table(name)
	if !ok {
		return dberror.NotFound("table", name).
			WithDetail(fmt.Sprintf("database '%s'", dbName)).
			In("DropTable", "Catalog")
	}

	db.removeTable(name)
	if err := c.persist(); err != nil {
		db.putTable(t)
		return err
	}

	if err := c.release(t); err != nil {
		logging.WithError(err).Warn("failed to release table storage",
			"database", dbName, "table", name)
	}
	logging.WithTable(dbName, name).Debug("table dropped")
	return nil
}

// ResolveDatabase looks up a database by name.
func (c *Catalog) ResolveDatabase(name string) (*Database, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	db, ok := c.databases[name]
	if !ok {
		return nil, dberror.NotFound("database", name)
	}
	return db, nil
}

// ResolveTable looks up table name in database dbName.
func (c *Catalog) ResolveTable(dbName, name string) (*Table, error) {
	db, err := c.ResolveDatabase(dbName)
	if err != nil {
		return nil, err
	}
	t, ok := db.table(name)
	if !ok {
		return nil, dberror.NotFound("table", name).
			WithDetail(fmt.Sprintf("database '%s'", dbName))
	}
	return t, nil
}

// HasDatabase reports whether a database with the given name exists.
func (c *Catalog) HasDatabase(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.databases[name]
	return ok
}

// ListDatabases returns the database names in sorted order.
func (c *Catalog) ListDatabases() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.databases))
}

// Close releases the pagers of every table. Stores are kept.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for _, db := range c.databases {
		for _, t := range db.allTables() {
			if err := t.heap.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// release closes the heap of a detached table and deletes its store.
func (c *Catalog) release(t *Table) error {
	closeErr := t.heap.Close()
	removeErr := c.backend.Remove(t.StorageID)
	return errors.Join(closeErr, removeErr)
}

// persist writes the current schema to the manifest, if any. Callers hold mu.
func (c *Catalog) persist() error {
	if c.manifest == nil {
		return nil
	}
	if err := c.manifest.Save(c.snapshot()); err != nil {
		return dberror.Wrap(err, dberror.KindInternal, "persist", "Catalog")
	}
	return nil
}

func (c *Catalog) snapshot() *Snapshot {
	snap := &Snapshot{Version: manifestVersion}
	for _, name := range slices.Sorted(maps.Keys(c.databases)) {
		ds := DatabaseSnapshot{Name: name, Tables: []TableSnapshot{}}
		for _, t := range c.databases[name].allTables() {
			ts := TableSnapshot{
				Name:      t.Name,
				StorageID: t.StorageID,
				Columns:   make([]ColumnSnapshot, len(t.columns)),
			}
			for i, col := range t.columns {
				ts.Columns[i] = snapshotColumn(col)
			}
			ds.Tables = append(ds.Tables, ts)
		}
		snap.Databases = append(snap.Databases, ds)
	}
	return snap
}
