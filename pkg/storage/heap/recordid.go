package heap

import (
	"cmp"
	"fmt"

	"minisql/pkg/storage/page"
)

// RecordID is the storage position of a row: the page it lives on and its
// slot within that page. Rows never move, so a RecordID stays valid until
// the table is dropped.
type RecordID struct {
	PageNo page.PageNumber
	Slot   int
}

func (r RecordID) String() string {
	return fmt.Sprintf("(%d,%d)", r.PageNo, r.Slot)
}

// Compare orders record ids by insertion order, returning -1, 0 or +1.
func (r RecordID) Compare(other RecordID) int {
	if c := cmp.Compare(r.PageNo, other.PageNo); c != 0 {
		return c
	}
	return cmp.Compare(r.Slot, other.Slot)
}
