package types

import (
	"errors"
	"strconv"

	"minisql/pkg/dberror"
)

// LiteralKind distinguishes unquoted integer literals from quoted text.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	StringLiteral
)

// Literal is a constant exactly as it appeared in a statement. It carries no
// column type; Coerce gives it one.
type Literal struct {
	Kind LiteralKind
	Text string
	Pos  int
}

func (l Literal) String() string {
	if l.Kind == StringLiteral {
		return "'" + l.Text + "'"
	}
	return l.Text
}

// Coercer turns literals into fields of a column type.
type Coercer struct {
	Pad byte
}

// DefaultCoercer pads CHAR values with DefaultPadByte.
var DefaultCoercer = Coercer{Pad: DefaultPadByte}

// Coerce is DefaultCoercer.Coerce.
func Coerce(column string, ct ColumnType, lit Literal) (Field, error) {
	return DefaultCoercer.Coerce(column, ct, lit)
}

// Coerce validates lit against ct and returns the stored representation.
//
// INT accepts unquoted integers in the int32 range. CHAR(n) accepts quoted
// text of at most n bytes and pads shorter text to n bytes. Longer text is
// rejected with LengthExceeded, never truncated.
func (c Coercer) Coerce(column string, ct ColumnType, lit Literal) (Field, error) {
	switch ct.Type {
	case IntType:
		if lit.Kind != IntLiteral {
			return nil, dberror.TypeMismatch(column, ct.String(), lit.String()).At(lit.Pos)
		}
		v, err := strconv.ParseInt(lit.Text, 10, 32)
		if err != nil {
			mismatch := dberror.TypeMismatch(column, ct.String(), lit.String()).At(lit.Pos)
			if errors.Is(err, strconv.ErrRange) {
				mismatch.WithHint("INT holds 32-bit signed integers")
			}
			return nil, mismatch
		}
		return NewInt32Field(int32(v)), nil

	case CharType:
		if lit.Kind != StringLiteral {
			return nil, dberror.TypeMismatch(column, ct.String(), lit.String()).At(lit.Pos)
		}
		if len(lit.Text) > ct.Length {
			return nil, dberror.LengthExceeded(column, ct.Length, len(lit.Text)).At(lit.Pos)
		}
		return NewCharField(lit.Text, ct.Length, c.Pad), nil

	default:
		return nil, dberror.InvalidType(column, "unknown column type")
	}
}
