package types

import "bytes"

// DefaultPadByte fills CHAR(n) values shorter than n.
const DefaultPadByte byte = ' '

// CharField is a fixed-length CHAR(n) value. Value always holds exactly n
// bytes; padding is part of the value.
type CharField struct {
	Value []byte
}

// NewCharField pads value with pad up to n bytes. It returns nil when value
// is longer than n; callers validate lengths through Coerce.
func NewCharField(value string, n int, pad byte) *CharField {
	if len(value) > n {
		return nil
	}
	buf := make([]byte, n)
	copy(buf, value)
	for i := len(value); i < n; i++ {
		buf[i] = pad
	}
	return &CharField{Value: buf}
}

func (s *CharField) Encode(dst []byte) {
	copy(dst[:len(s.Value)], s.Value)
}

// Type returns the type identifier for this field.
func (s *CharField) Type() Type {
	return CharType
}

// String returns the stored bytes, padding included.
func (s *CharField) String() string {
	return string(s.Value)
}

// Equals compares the full fixed-length representation, so 'abc' stored in
// CHAR(5) equals 'abc  ' but not 'abc' stored in CHAR(3).
func (s *CharField) Equals(other Field) bool {
	otherField, ok := other.(*CharField)
	if !ok {
		return false
	}
	return bytes.Equal(s.Value, otherField.Value)
}

func (s *CharField) Length() int {
	return len(s.Value)
}
