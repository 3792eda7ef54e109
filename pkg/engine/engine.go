package engine

import (
	"path/filepath"
	"sync"

	"minisql/pkg/catalog"
	"minisql/pkg/dberror"
	"minisql/pkg/executor"
	"minisql/pkg/logging"
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/parser"
	"minisql/pkg/parser/statements"
	"minisql/pkg/storage"
	"minisql/pkg/types"
)

// Options configures an Engine. The zero value is an in-memory engine that
// pads CHAR values with spaces.
type Options struct {
	// Backend stores table pages. Nil selects a MemoryBackend.
	Backend storage.Backend

	// ManifestPath is where the schema is persisted. Empty disables the
	// manifest, so the schema lives only as long as the engine.
	ManifestPath string

	// PadByte fills CHAR(n) values shorter than n. Nil selects
	// types.DefaultPadByte; any byte, NUL included, can be set.
	PadByte *byte
}

// Engine is the entry point of the database: it turns statement text into
// results. All statements of all sessions run one at a time.
type Engine struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	executor *executor.Executor
	stats    *Stats
}

// New creates an engine from opts.
func New(opts Options) (*Engine, error) {
	backend := opts.Backend
	if backend == nil {
		backend = storage.NewMemoryBackend()
	}
	var manifest catalog.Manifest
	if opts.ManifestPath != "" {
		manifest = catalog.NewFileManifest(opts.ManifestPath)
	}
	pad := types.DefaultPadByte
	if opts.PadByte != nil {
		pad = *opts.PadByte
	}

	cat, err := catalog.New(backend, manifest)
	if err != nil {
		return nil, err
	}

	logging.WithComponent("engine").Info("engine started",
		"persistent", backend.Persistent(),
		"databases", len(cat.ListDatabases()))

	return &Engine{
		catalog:  cat,
		executor: executor.NewExecutor(cat, types.Coercer{Pad: pad}),
		stats:    &Stats{},
	}, nil
}

// Open creates an engine that keeps its pages and manifest in dataDir.
func Open(dataDir string) (*Engine, error) {
	backend, err := storage.NewFileBackend(dataDir)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Backend:      backend,
		ManifestPath: filepath.Join(dataDir, catalog.ManifestFileName),
	})
}

// Execute lexes, parses and executes one ';'-terminated statement with
// current as the selected database ("" for none).
func (e *Engine) Execute(sql, current string) (*executor.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stmt, err := parser.ParseStatement(sql)
	if err != nil {
		e.stats.recordError()
		return nil, err
	}
	return e.execute(stmt, current)
}

// ExecuteScript runs every statement of sql in order and stops at the first
// failure. The results of the statements that ran are returned either way.
func (e *Engine) ExecuteScript(sql, current string) ([]*executor.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	script := parser.NewScript(sql)
	var results []*executor.Result
	for {
		stmt, err := script.Next()
		if err != nil {
			e.stats.recordError()
			return results, err
		}
		if stmt == nil {
			return results, nil
		}
		res, err := e.execute(stmt, current)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
}

// execute runs a parsed statement. Callers hold mu.
func (e *Engine) execute(stmt statements.Statement, current string) (*executor.Result, error) {
	res, err := e.executor.Execute(stmt, current)
	if err != nil {
		e.stats.recordError()
		return nil, err
	}
	e.stats.recordSuccess()
	return res, nil
}

// Catalog exposes the catalog for introspection.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// CreateDatabase creates database name without going through SQL. The name
// must be a plain identifier so that statements can refer to it later.
func (e *Engine) CreateDatabase(name string) error {
	if !lexer.IsIdentifier(name) {
		return dberror.Newf(dberror.KindSyntax, "'%s' is not a valid database name", name).
			WithHint("use letters, digits and '_', starting with a letter or '_', and no keyword")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.CreateDatabase(name)
}

// Tables lists the tables of database db.
func (e *Engine) Tables(db string) ([]string, error) {
	d, err := e.catalog.ResolveDatabase(db)
	if err != nil {
		return nil, err
	}
	return d.ListTables(), nil
}

// Describe returns the columns of table in database db.
func (e *Engine) Describe(db, table string) ([]catalog.Column, error) {
	t, err := e.catalog.ResolveTable(db, table)
	if err != nil {
		return nil, err
	}
	return t.Columns(), nil
}

// Statistics returns a snapshot of the engine counters.
func (e *Engine) Statistics() Info {
	queries, errs := e.stats.snapshot()
	dbs := e.catalog.ListDatabases()
	return Info{
		Databases:       dbs,
		DatabaseCount:   len(dbs),
		QueriesExecuted: queries,
		ErrorCount:      errs,
	}
}

// Close releases every table store.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.catalog.Close(); err != nil {
		logging.WithError(err).Warn("failed to close catalog")
		return err
	}
	return nil
}
