package heap

import (
	"fmt"

	"minisql/pkg/dberror"
	"minisql/pkg/storage/page"
	"minisql/pkg/types"
)

// Layout describes the fixed-width record of a table: every field sits at
// the prefix sum of the widths of the fields before it.
type Layout struct {
	types   []types.ColumnType
	offsets []int
	size    int
}

// NewLayout computes the record layout for the given column types. It fails
// with INVALID_TYPE when a type has no width or when one record does not fit
// in a page.
func NewLayout(columnTypes []types.ColumnType) (*Layout, error) {
	if len(columnTypes) == 0 {
		return nil, dberror.New(dberror.KindInvalidType, "a record needs at least one field")
	}

	l := &Layout{
		types:   append([]types.ColumnType(nil), columnTypes...),
		offsets: make([]int, len(columnTypes)),
	}
	for i, ct := range columnTypes {
		if !ct.Valid() {
			return nil, dberror.Newf(dberror.KindInvalidType, "field %d has invalid type %s", i, ct)
		}
		l.offsets[i] = l.size
		l.size += ct.Width()
	}

	if l.size > page.PayloadSize {
		return nil, dberror.Newf(dberror.KindInvalidType,
			"record of %d bytes does not fit in a page", l.size).
			WithDetail(fmt.Sprintf("at most %d bytes per record", page.PayloadSize))
	}
	return l, nil
}

// RecordSize is the width of one record in bytes.
func (l *Layout) RecordSize() int {
	return l.size
}

// NumFields is the number of fields per record.
func (l *Layout) NumFields() int {
	return len(l.types)
}

// Offset is the byte offset of field i within a record.
func (l *Layout) Offset(i int) int {
	return l.offsets[i]
}

// FieldType is the column type of field i.
func (l *Layout) FieldType(i int) types.ColumnType {
	return l.types[i]
}

// RecordsPerPage is how many records fit in one page.
func (l *Layout) RecordsPerPage() int {
	return page.PayloadSize / l.size
}

// encode writes row into dst, which must be RecordSize bytes long.
func (l *Layout) encode(row types.Row, dst []byte) {
	for i, f := range row {
		f.Encode(dst[l.offsets[i] : l.offsets[i]+l.types[i].Width()])
	}
}

// decode parses one record.
func (l *Layout) decode(src []byte) (types.Row, error) {
	row := make(types.Row, len(l.types))
	for i, ct := range l.types {
		f, err := types.ParseField(src[l.offsets[i]:], ct)
		if err != nil {
			return nil, err
		}
		row[i] = f
	}
	return row, nil
}

// check verifies that f can be stored as field i.
func (l *Layout) check(i int, f types.Field) error {
	ct := l.types[i]
	if f == nil || f.Type() != ct.Type || f.Length() != ct.Width() {
		got := "nil"
		if f != nil {
			got = fmt.Sprintf("%s of %d bytes", f.Type(), f.Length())
		}
		return dberror.Newf(dberror.KindTypeMismatch, "field %d expects %s", i, ct).WithDetail("got " + got)
	}
	return nil
}
