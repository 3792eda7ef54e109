package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"minisql/pkg/dberror"
	"minisql/pkg/storage"
	"minisql/pkg/types"
)

func usersColumns() []Column {
	return []Column{
		{Name: "id", Type: types.Int()},
		{Name: "name", Type: types.Char(10)},
	}
}

func newTestCatalog(t *testing.T) (*Catalog, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	c, err := New(backend, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, backend
}

func mustCreateDatabase(t *testing.T, c *Catalog, name string) {
	t.Helper()
	if err := c.CreateDatabase(name); err != nil {
		t.Fatalf("CreateDatabase(%q): %v", name, err)
	}
}

func TestCatalog_CreateDatabase(t *testing.T) {
	c, _ := newTestCatalog(t)
	mustCreateDatabase(t, c, "shop")

	if err := c.CreateDatabase("shop"); !errors.Is(err, dberror.ErrAlreadyExists) {
		t.Fatalf("second CreateDatabase = %v, want ALREADY_EXISTS", err)
	}
	if err := c.CreateDatabase("Shop"); err != nil {
		t.Fatalf("names are case-sensitive, got %v", err)
	}
	if got := c.ListDatabases(); !slices.Equal(got, []string{"Shop", "shop"}) {
		t.Errorf("ListDatabases = %v", got)
	}
}

func TestCatalog_CreateTableErrors(t *testing.T) {
	c, _ := newTestCatalog(t)
	mustCreateDatabase(t, c, "d")
	if _, err := c.CreateTable("d", "users", usersColumns()); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	tests := []struct {
		name    string
		db      string
		table   string
		columns []Column
		want    error
	}{
		{
			name:    "missing database",
			db:      "nope",
			table:   "t",
			columns: usersColumns(),
			want:    dberror.ErrNotFound,
		},
		{
			name:    "existing table wins over duplicate column",
			db:      "d",
			table:   "users",
			columns: []Column{{Name: "a", Type: types.Int()}, {Name: "a", Type: types.Int()}},
			want:    dberror.ErrAlreadyExists,
		},
		{
			name:    "duplicate column wins over invalid type",
			db:      "d",
			table:   "t",
			columns: []Column{{Name: "a", Type: types.Char(0)}, {Name: "a", Type: types.Int()}},
			want:    dberror.ErrDuplicateColumn,
		},
		{
			name:    "zero length char",
			db:      "d",
			table:   "t",
			columns: []Column{{Name: "a", Type: types.Char(0)}},
			want:    dberror.ErrInvalidType,
		},
		{
			name:    "record larger than a page",
			db:      "d",
			table:   "t",
			columns: []Column{{Name: "a", Type: types.Char(5000)}},
			want:    dberror.ErrInvalidType,
		},
		{
			name:    "no columns",
			db:      "d",
			table:   "t",
			columns: nil,
			want:    dberror.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateTable(tt.db, tt.table, tt.columns)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CreateTable = %v, want %v", err, tt.want)
			}
		})
	}

	db, err := c.ResolveDatabase("d")
	if err != nil {
		t.Fatal(err)
	}
	if got := db.ListTables(); !slices.Equal(got, []string{"users"}) {
		t.Errorf("failed creates must not leave tables behind, got %v", got)
	}
}

func TestCatalog_CreateTableTooWideNamesPageLimit(t *testing.T) {
	c, _ := newTestCatalog(t)
	mustCreateDatabase(t, c, "d")

	_, err := c.CreateTable("d", "wide", []Column{{Name: "a", Type: types.Char(5000)}})
	var dbErr *dberror.DBError
	if !errors.As(err, &dbErr) || dbErr.Kind != dberror.KindInvalidType {
		t.Fatalf("CreateTable = %v, want INVALID_TYPE", err)
	}
	if !strings.Contains(dbErr.Hint, "4092 bytes") || !strings.Contains(dbErr.Hint, "'wide'") {
		t.Errorf("hint %q should name the table and the page limit", dbErr.Hint)
	}
}

func TestCatalog_ResolveTableAndColumn(t *testing.T) {
	c, _ := newTestCatalog(t)
	mustCreateDatabase(t, c, "d")
	if _, err := c.CreateTable("d", "users", usersColumns()); err != nil {
		t.Fatal(err)
	}

	users, err := c.ResolveTable("d", "users")
	if err != nil {
		t.Fatalf("ResolveTable: %v", err)
	}
	idx, col, err := users.ResolveColumn("name")
	if err != nil {
		t.Fatalf("ResolveColumn: %v", err)
	}
	if idx != 1 || col.Type != types.Char(10) {
		t.Errorf("ResolveColumn(name) = %d, %v", idx, col)
	}
	if !slices.Equal(users.ColumnNames(), []string{"id", "name"}) {
		t.Errorf("ColumnNames = %v", users.ColumnNames())
	}

	if _, _, err := users.ResolveColumn("Name"); !errors.Is(err, dberror.ErrNotFound) {
		t.Errorf("ResolveColumn(Name) = %v, want NOT_FOUND", err)
	}
	if _, err := c.ResolveTable("d", "orders"); !errors.Is(err, dberror.ErrNotFound) {
		t.Errorf("ResolveTable(orders) = %v, want NOT_FOUND", err)
	}
	if _, err := c.ResolveTable("x", "users"); !errors.Is(err, dberror.ErrNotFound) {
		t.Errorf("ResolveTable(x.users) = %v, want NOT_FOUND", err)
	}

	cols := users.Columns()
	cols[0].Name = "changed"
	if users.Column(0).Name != "id" {
		t.Error("Columns must return a copy")
	}
}

func TestCatalog_DropTableReleasesStorage(t *testing.T) {
	c, backend := newTestCatalog(t)
	mustCreateDatabase(t, c, "d")
	users, err := c.CreateTable("d", "users", usersColumns())
	if err != nil {
		t.Fatal(err)
	}
	row := types.Row{types.NewInt32Field(1), types.NewCharField("alice", 10, types.DefaultPadByte)}
	if _, err := users.Heap().Append(row); err != nil {
		t.Fatal(err)
	}

	if err := c.DropTable("d", "users"); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	if backend.Stores() != 0 {
		t.Errorf("stores after drop = %d, want 0", backend.Stores())
	}
	if err := c.DropTable("d", "users"); !errors.Is(err, dberror.ErrNotFound) {
		t.Errorf("second DropTable = %v, want NOT_FOUND", err)
	}

	again, err := c.CreateTable("d", "users", usersColumns())
	if err != nil {
		t.Fatal(err)
	}
	if again.RowCount() != 0 {
		t.Errorf("recreated table has %d rows, want 0", again.RowCount())
	}
	if again.StorageID == users.StorageID {
		t.Error("recreated table must not reuse the old store")
	}
}

func TestCatalog_DropDatabase(t *testing.T) {
	c, backend := newTestCatalog(t)
	mustCreateDatabase(t, c, "d")
	for _, name := range []string{"a", "b", "c"} {
		if _, err := c.CreateTable("d", name, usersColumns()); err != nil {
			t.Fatal(err)
		}
	}
	if backend.Stores() != 3 {
		t.Fatalf("stores = %d, want 3", backend.Stores())
	}

	if err := c.DropDatabase("d"); err != nil {
		t.Fatalf("DropDatabase: %v", err)
	}
	if backend.Stores() != 0 {
		t.Errorf("stores after drop = %d, want 0", backend.Stores())
	}
	if c.HasDatabase("d") {
		t.Error("database still registered")
	}
	if err := c.DropDatabase("d"); !errors.Is(err, dberror.ErrNotFound) {
		t.Errorf("second DropDatabase = %v, want NOT_FOUND", err)
	}

	mustCreateDatabase(t, c, "d")
	db, _ := c.ResolveDatabase("d")
	if db.NumTables() != 0 {
		t.Errorf("recreated database has %d tables", db.NumTables())
	}
}

func TestCatalog_ManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	manifest := NewFileManifest(filepath.Join(dir, ManifestFileName))

	c, err := New(backend, manifest)
	if err != nil {
		t.Fatal(err)
	}
	mustCreateDatabase(t, c, "shop")
	mustCreateDatabase(t, c, "empty")
	users, err := c.CreateTable("shop", "users", usersColumns())
	if err != nil {
		t.Fatal(err)
	}
	row := types.Row{types.NewInt32Field(7), types.NewCharField("bob", 10, types.DefaultPadByte)}
	if _, err := users.Heap().Append(row); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := New(backend, manifest)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if got := reopened.ListDatabases(); !slices.Equal(got, []string{"empty", "shop"}) {
		t.Errorf("ListDatabases = %v", got)
	}
	users, err = reopened.ResolveTable("shop", "users")
	if err != nil {
		t.Fatal(err)
	}
	if users.RowCount() != 1 {
		t.Errorf("RowCount = %d, want 1", users.RowCount())
	}
	if users.Column(1).Type != types.Char(10) {
		t.Errorf("column type = %v", users.Column(1).Type)
	}
}

func TestFileManifest_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	m := NewFileManifest(path)

	snap, err := m.Load()
	if err != nil || len(snap.Databases) != 0 {
		t.Fatalf("missing manifest = %v, %v; want empty snapshot", snap, err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Load(); dberror.KindOf(err) != dberror.KindCorrupt {
		t.Errorf("garbage manifest = %v, want CORRUPT_DATA", err)
	}

	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Load(); dberror.KindOf(err) != dberror.KindCorrupt {
		t.Errorf("future manifest = %v, want CORRUPT_DATA", err)
	}
}

type failingManifest struct {
	saves int
}

func (m *failingManifest) Load() (*Snapshot, error) {
	return &Snapshot{Version: manifestVersion}, nil
}

func (m *failingManifest) Save(*Snapshot) error {
	m.saves++
	return errors.New("disk full")
}

func TestCatalog_RollsBackOnManifestFailure(t *testing.T) {
	backend := storage.NewMemoryBackend()
	c, err := New(backend, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustCreateDatabase(t, c, "d")
	if _, err := c.CreateTable("d", "users", usersColumns()); err != nil {
		t.Fatal(err)
	}

	m := &failingManifest{}
	c.manifest = m

	if err := c.CreateDatabase("other"); !errors.Is(err, dberror.ErrInternal) {
		t.Errorf("CreateDatabase = %v, want INTERNAL", err)
	}
	if c.HasDatabase("other") {
		t.Error("CreateDatabase was not rolled back")
	}

	if _, err := c.CreateTable("d", "orders", usersColumns()); err == nil {
		t.Error("CreateTable should fail")
	}
	if _, err := c.ResolveTable("d", "orders"); !errors.Is(err, dberror.ErrNotFound) {
		t.Error("CreateTable was not rolled back")
	}
	if backend.Stores() != 1 {
		t.Errorf("stores = %d, want 1", backend.Stores())
	}

	if err := c.DropTable("d", "users"); err == nil {
		t.Error("DropTable should fail")
	}
	if _, err := c.ResolveTable("d", "users"); err != nil {
		t.Errorf("DropTable was not rolled back: %v", err)
	}

	if err := c.DropDatabase("d"); err == nil {
		t.Error("DropDatabase should fail")
	}
	if !c.HasDatabase("d") {
		t.Error("DropDatabase was not rolled back")
	}
	if m.saves != 4 {
		t.Errorf("saves = %d, want 4", m.saves)
	}
}
