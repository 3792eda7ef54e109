package page

import (
	"sync"

	"minisql/pkg/dberror"
)

// MemoryPager keeps pages in process memory. It is the default pager and
// loses its content when the process exits.
type MemoryPager struct {
	mu     sync.RWMutex
	pages  [][PageSize]byte
	closed bool
}

func NewMemoryPager() *MemoryPager {
	return &MemoryPager{}
}

func (m *MemoryPager) ReadPage(no PageNumber) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.check(no); err != nil {
		return nil, err
	}
	p := &Page{ID: no, Data: m.pages[no]}
	return p, nil
}

func (m *MemoryPager) WritePage(p *Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(p.ID); err != nil {
		return err
	}
	m.pages[p.ID] = p.Data
	return nil
}

func (m *MemoryPager) AllocatePage() (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, errClosed("AllocatePage")
	}
	m.pages = append(m.pages, [PageSize]byte{})
	return NewPage(PageNumber(len(m.pages) - 1)), nil // #nosec G115
}

func (m *MemoryPager) NumPages() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pages)
}

// Close releases the pages. A closed pager rejects every further call.
func (m *MemoryPager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = nil
	m.closed = true
	return nil
}

func (m *MemoryPager) check(no PageNumber) error {
	if m.closed {
		return errClosed("MemoryPager")
	}
	if int(no) >= len(m.pages) {
		return dberror.Newf(dberror.KindInternal, "page %d does not exist", no).In("ReadPage", "MemoryPager")
	}
	return nil
}

func errClosed(op string) error {
	return dberror.New(dberror.KindInternal, "pager is closed").In(op, "Pager")
}
