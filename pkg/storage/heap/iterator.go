package heap

import (
	"minisql/pkg/storage/page"
	"minisql/pkg/types"
)

// Iterator walks the rows of a HeapFile page by page. The set of rows it
// visits is fixed when the iterator is created; rows appended later are
// not seen.
//
//	it := hf.Scan()
//	defer it.Close()
//	for it.Next() {
//	    rid, row := it.RecordID(), it.Row()
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator struct {
	hf    *HeapFile
	total int

	current *page.Page
	index   int
	rid     RecordID
	row     types.Row
	err     error
}

func newIterator(hf *HeapFile) *Iterator {
	return &Iterator{hf: hf, total: hf.RowCount(), index: -1}
}

// Next advances to the next row. It returns false at the end of the heap or
// after an error; check Err to tell them apart.
func (it *Iterator) Next() bool {
	if it.err != nil || it.hf == nil {
		return false
	}

	it.index++
	if it.index >= it.total {
		it.row = nil
		return false
	}

	perPage := it.hf.layout.RecordsPerPage()
	pageNo := page.PageNumber(it.index / perPage) // #nosec G115
	slot := it.index % perPage

	if it.current == nil || it.current.ID != pageNo {
		pg, err := it.hf.pager.ReadPage(pageNo)
		if err != nil {
			it.err = err
			return false
		}
		it.current = pg
	}

	size := it.hf.layout.RecordSize()
	row, err := it.hf.layout.decode(it.current.Payload()[slot*size : (slot+1)*size])
	if err != nil {
		it.err = err
		return false
	}

	it.rid = RecordID{PageNo: pageNo, Slot: slot}
	it.row = row
	return true
}

// RecordID is the position of the current row.
func (it *Iterator) RecordID() RecordID {
	return it.rid
}

// Row is the current row, decoded into fresh fields.
func (it *Iterator) Row() types.Row {
	return it.row
}

// Err returns the first error hit while scanning.
func (it *Iterator) Err() error {
	return it.err
}

// Close releases the iterator's cached page.
func (it *Iterator) Close() {
	it.current = nil
	it.row = nil
	it.hf = nil
}
