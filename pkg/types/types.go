package types

import "fmt"

// Type is the storage class of a column.
type Type int

const (
	IntType Type = iota
	CharType
)

// IntSize is the fixed width of an INT field in bytes.
const IntSize = 4

// String returns a string representation of the type
func (t Type) String() string {
	switch t {
	case IntType:
		return "INT"
	case CharType:
		return "CHAR"
	default:
		return "UNKNOWN_TYPE"
	}
}

// ColumnType is a column's declared type. Length is the declared n of
// CHAR(n) and is ignored for INT.
type ColumnType struct {
	Type   Type
	Length int
}

// Int returns the INT column type.
func Int() ColumnType {
	return ColumnType{Type: IntType}
}

// Char returns the CHAR(n) column type. It does not validate n.
func Char(n int) ColumnType {
	return ColumnType{Type: CharType, Length: n}
}

// Width is the number of bytes a field of this type occupies in a record.
func (c ColumnType) Width() int {
	switch c.Type {
	case IntType:
		return IntSize
	case CharType:
		return c.Length
	default:
		return 0
	}
}

// Valid reports whether the type can be stored, i.e. CHAR has a positive length.
func (c ColumnType) Valid() bool {
	switch c.Type {
	case IntType:
		return true
	case CharType:
		return c.Length > 0
	default:
		return false
	}
}

func (c ColumnType) String() string {
	if c.Type == CharType {
		return fmt.Sprintf("CHAR(%d)", c.Length)
	}
	return c.Type.String()
}
