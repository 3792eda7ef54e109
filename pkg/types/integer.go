package types

import (
	"encoding/binary"
	"strconv"
)

// Int32Field represents a 32-bit signed integer field
type Int32Field struct {
	Value int32
}

func NewInt32Field(value int32) *Int32Field {
	return &Int32Field{Value: value}
}

func (f *Int32Field) Encode(dst []byte) {
	binary.LittleEndian.PutUint32(dst[:IntSize], uint32(f.Value)) // #nosec G115
}

func (f *Int32Field) Type() Type {
	return IntType
}

func (f *Int32Field) String() string {
	return strconv.FormatInt(int64(f.Value), 10)
}

func (f *Int32Field) Equals(other Field) bool {
	otherField, ok := other.(*Int32Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Int32Field) Length() int {
	return IntSize
}
