package types

import (
	"encoding/binary"

	"minisql/pkg/dberror"
)

// ParseField decodes one field of column type ct from the start of src.
func ParseField(src []byte, ct ColumnType) (Field, error) {
	width := ct.Width()
	if width == 0 || len(src) < width {
		return nil, dberror.Newf(dberror.KindCorrupt,
			"field of type %s needs %d bytes, have %d", ct, width, len(src))
	}

	switch ct.Type {
	case IntType:
		return NewInt32Field(int32(binary.LittleEndian.Uint32(src[:IntSize]))), nil // #nosec G115

	case CharType:
		buf := make([]byte, width)
		copy(buf, src[:width])
		return &CharField{Value: buf}, nil

	default:
		return nil, dberror.Newf(dberror.KindCorrupt, "unsupported field type: %v", ct.Type)
	}
}
