package page

import (
	"os"
	"sync"

	"minisql/pkg/dberror"
)

// FilePager stores pages back to back in a single file. Every WritePage is
// synced before it returns; there is no cache.
type FilePager struct {
	mu       sync.Mutex
	file     *os.File
	numPages int
}

// NewFilePager opens or creates the page file at path.
func NewFilePager(path string) (*FilePager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, dberror.Wrap(err, dberror.KindInternal, "NewFilePager", "FilePager")
	}
	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, dberror.Wrap(err, dberror.KindInternal, "NewFilePager", "FilePager")
	}

	if stat.Size()%PageSize != 0 {
		_ = file.Close()
		return nil, dberror.Newf(dberror.KindCorrupt,
			"page file %s has size %d, not a multiple of %d", path, stat.Size(), PageSize)
	}

	return &FilePager{
		file:     file,
		numPages: int(stat.Size() / PageSize),
	}, nil
}

func (p *FilePager) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.file.Close()
}

func (p *FilePager) ReadPage(no PageNumber) (*Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if int(no) >= p.numPages {
		return nil, dberror.Newf(dberror.KindInternal, "page %d does not exist", no).In("ReadPage", "FilePager")
	}

	page := NewPage(no)
	if _, err := p.file.ReadAt(page.Data[:], int64(no)*PageSize); err != nil {
		return nil, dberror.Wrap(err, dberror.KindInternal, "ReadPage", "FilePager")
	}
	return page, nil
}

func (p *FilePager) WritePage(page *Page) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if int(page.ID) >= p.numPages {
		return dberror.Newf(dberror.KindInternal, "page %d does not exist", page.ID).In("WritePage", "FilePager")
	}
	return p.write(page)
}

func (p *FilePager) AllocatePage() (*Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	page := NewPage(PageNumber(p.numPages)) // #nosec G115
	if err := p.write(page); err != nil {
		return nil, err
	}
	p.numPages++
	return page, nil
}

func (p *FilePager) NumPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.numPages
}

func (p *FilePager) write(page *Page) error {
	n, err := p.file.WriteAt(page.Data[:], int64(page.ID)*PageSize)
	if err != nil {
		return dberror.Wrap(err, dberror.KindInternal, "WritePage", "FilePager")
	}
	if n != PageSize {
		return dberror.Newf(dberror.KindInternal, "partial write: wrote %d bytes, expected %d bytes", n, PageSize)
	}
	if err := p.file.Sync(); err != nil {
		return dberror.Wrap(err, dberror.KindInternal, "WritePage", "FilePager")
	}
	return nil
}
