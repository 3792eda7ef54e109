package heap

import (
	"errors"
	"slices"
	"sync"

	"minisql/pkg/dberror"
	"minisql/pkg/storage/page"
	"minisql/pkg/types"
)

// HeapFile is the row store of one table: an append-only sequence of fixed
// width records packed into pages. Every page but the last is full.
type HeapFile struct {
	mu     sync.RWMutex
	pager  page.Pager
	layout *Layout
	rows   int
}

// NewHeapFile opens a heap over pager. Existing pages are trusted to have
// been written by a heap with the same layout. A trailing page with no
// records, left by an append whose write failed, counts as empty.
func NewHeapFile(pager page.Pager, layout *Layout) (*HeapFile, error) {
	hf := &HeapFile{pager: pager, layout: layout}

	n := pager.NumPages()
	if n > 0 {
		last, err := pager.ReadPage(page.PageNumber(n - 1)) // #nosec G115
		if err != nil {
			return nil, err
		}
		if last.RecordCount() > layout.RecordsPerPage() {
			return nil, dberror.Newf(dberror.KindCorrupt,
				"page %d claims %d records, at most %d fit", last.ID, last.RecordCount(), layout.RecordsPerPage())
		}
		hf.rows = (n-1)*layout.RecordsPerPage() + last.RecordCount()
	}
	return hf, nil
}

// RowCount is the number of rows appended so far.
func (hf *HeapFile) RowCount() int {
	hf.mu.RLock()
	defer hf.mu.RUnlock()
	return hf.rows
}

// NumPages is the number of pages the heap occupies.
func (hf *HeapFile) NumPages() int {
	return hf.pager.NumPages()
}

// Append stores row after the last row and returns its position. The row
// must have one field per layout field, each of the matching type and width.
func (hf *HeapFile) Append(row types.Row) (RecordID, error) {
	if len(row) != hf.layout.NumFields() {
		return RecordID{}, dberror.ArityMismatch(hf.layout.NumFields(), len(row)).In("Append", "HeapFile")
	}
	for i, f := range row {
		if err := hf.layout.check(i, f); err != nil {
			return RecordID{}, err
		}
	}

	hf.mu.Lock()
	defer hf.mu.Unlock()

	perPage := hf.layout.RecordsPerPage()
	pageNo := page.PageNumber(hf.rows / perPage) // #nosec G115
	slot := hf.rows % perPage

	var (
		pg  *page.Page
		err error
	)
	if int(pageNo) < hf.pager.NumPages() {
		// Also reuses an empty page allocated by a failed append.
		pg, err = hf.pager.ReadPage(pageNo)
	} else {
		pg, err = hf.pager.AllocatePage()
	}
	if err != nil {
		return RecordID{}, err
	}
	if pg.ID != pageNo {
		return RecordID{}, dberror.Newf(dberror.KindCorrupt,
			"expected to append to page %d, pager returned page %d", pageNo, pg.ID).In("Append", "HeapFile")
	}

	size := hf.layout.RecordSize()
	hf.layout.encode(row, pg.Payload()[slot*size:(slot+1)*size])
	pg.SetRecordCount(slot + 1)

	if err := hf.pager.WritePage(pg); err != nil {
		return RecordID{}, err
	}
	hf.rows++
	return RecordID{PageNo: pg.ID, Slot: slot}, nil
}

// UpdateField overwrites field col of every row in rids in place. The rest
// of each record is left untouched. All changes are staged before the first
// page is written; if a write fails, the pages already written are put back.
func (hf *HeapFile) UpdateField(rids []RecordID, col int, value types.Field) error {
	if col < 0 || col >= hf.layout.NumFields() {
		return dberror.Newf(dberror.KindInternal, "field index %d out of range", col).In("UpdateField", "HeapFile")
	}
	if err := hf.layout.check(col, value); err != nil {
		return err
	}

	hf.mu.Lock()
	defer hf.mu.Unlock()

	for _, rid := range rids {
		if !hf.contains(rid) {
			return dberror.Newf(dberror.KindInternal, "record %s does not exist", rid).In("UpdateField", "HeapFile")
		}
	}

	sorted := slices.Clone(rids)
	slices.SortFunc(sorted, RecordID.Compare)

	var staged, originals []*page.Page
	width := hf.layout.FieldType(col).Width()
	for _, rid := range sorted {
		if len(staged) == 0 || staged[len(staged)-1].ID != rid.PageNo {
			pg, err := hf.pager.ReadPage(rid.PageNo)
			if err != nil {
				return err
			}
			orig := *pg
			staged = append(staged, pg)
			originals = append(originals, &orig)
		}
		pg := staged[len(staged)-1]
		start := rid.Slot*hf.layout.RecordSize() + hf.layout.Offset(col)
		value.Encode(pg.Payload()[start : start+width])
	}

	for i, pg := range staged {
		if err := hf.pager.WritePage(pg); err != nil {
			return errors.Join(err, hf.restore(originals[:i]))
		}
	}
	return nil
}

func (hf *HeapFile) restore(pages []*page.Page) error {
	var errs []error
	for _, pg := range pages {
		if err := hf.pager.WritePage(pg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Scan returns an iterator over all rows in insertion order. Every call
// starts a fresh pass from the first row.
func (hf *HeapFile) Scan() *Iterator {
	return newIterator(hf)
}

// Close releases the underlying pager.
func (hf *HeapFile) Close() error {
	return hf.pager.Close()
}

func (hf *HeapFile) contains(rid RecordID) bool {
	perPage := hf.layout.RecordsPerPage()
	if rid.Slot < 0 || rid.Slot >= perPage {
		return false
	}
	return int(rid.PageNo)*perPage+rid.Slot < hf.rows
}
