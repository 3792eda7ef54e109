package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"minisql/pkg/dberror"
	"minisql/pkg/logging"
	"minisql/pkg/storage/page"
)

// Backend creates and removes the page stores of tables.
type Backend interface {
	// Open returns the pager of store id, creating an empty store if none
	// exists yet.
	Open(id string) (page.Pager, error)

	// Remove deletes store id and its pages. Removing a store that does not
	// exist is not an error.
	Remove(id string) error

	// Persistent reports whether stores survive the process.
	Persistent() bool
}

// MemoryBackend keeps every store in memory.
type MemoryBackend struct {
	mu     sync.Mutex
	stores map[string]*page.MemoryPager
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{stores: make(map[string]*page.MemoryPager)}
}

func (b *MemoryBackend) Open(id string) (page.Pager, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.stores[id]; ok {
		return p, nil
	}
	p := page.NewMemoryPager()
	b.stores[id] = p
	return p, nil
}

func (b *MemoryBackend) Remove(id string) error {
	b.mu.Lock()
	p, ok := b.stores[id]
	delete(b.stores, id)
	b.mu.Unlock()

	if ok {
		return p.Close()
	}
	return nil
}

func (b *MemoryBackend) Persistent() bool {
	return false
}

// Stores is the number of live stores.
func (b *MemoryBackend) Stores() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stores)
}

// FileBackend keeps each store in its own page file under Dir.
type FileBackend struct {
	Dir string
}

// tableFileExt is the extension of page files.
const tableFileExt = ".tbl"

// NewFileBackend creates dir if needed and returns a backend rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, dberror.Wrap(err, dberror.KindInternal, "NewFileBackend", "FileBackend")
	}
	return &FileBackend{Dir: dir}, nil
}

func (b *FileBackend) path(id string) string {
	return filepath.Join(b.Dir, id+tableFileExt)
}

func (b *FileBackend) Open(id string) (page.Pager, error) {
	return page.NewFilePager(b.path(id))
}

func (b *FileBackend) Remove(id string) error {
	err := os.Remove(b.path(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return dberror.Wrap(err, dberror.KindInternal, "Remove", "FileBackend")
	}
	logging.WithStore(id).Debug("page file removed", "dir", b.Dir)
	return nil
}

func (b *FileBackend) Persistent() bool {
	return true
}
