package page

import (
	"encoding/binary"
	"fmt"
)

const (
	// PageSize is the size of each page in bytes (4KB)
	PageSize = 4096

	// HeaderSize is the number of bytes at the start of every page reserved
	// for the header: a uint16 record count followed by two unused bytes.
	HeaderSize = 4

	// PayloadSize is the space left for records after the header.
	PayloadSize = PageSize - HeaderSize
)

// PageNumber is the zero-based index of a page within one pager.
type PageNumber uint32

// Page is one fixed-size block of a pager.
type Page struct {
	ID   PageNumber
	Data [PageSize]byte
}

// NewPage returns a zeroed page with the given number.
func NewPage(id PageNumber) *Page {
	return &Page{ID: id}
}

// RecordCount is the number of records stored in the page.
func (p *Page) RecordCount() int {
	return int(binary.LittleEndian.Uint16(p.Data[0:2]))
}

// SetRecordCount updates the header's record count.
func (p *Page) SetRecordCount(n int) {
	binary.LittleEndian.PutUint16(p.Data[0:2], uint16(n)) // #nosec G115
}

// Payload returns the writable record area of the page.
func (p *Page) Payload() []byte {
	return p.Data[HeaderSize:]
}

func (p *Page) String() string {
	return fmt.Sprintf("Page(%d, records=%d)", p.ID, p.RecordCount())
}

// Pager reads and writes whole pages of a single store.
type Pager interface {
	// ReadPage returns a copy of page no. Changes to the copy are not
	// visible until WritePage is called.
	ReadPage(no PageNumber) (*Page, error)

	WritePage(p *Page) error

	// AllocatePage appends a zeroed page and returns it.
	AllocatePage() (*Page, error)

	NumPages() int

	Close() error
}
