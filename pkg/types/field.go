package types

// Field is a single typed value of a row. Every Field has a fixed width
// determined by its column type, so rows can be laid out as fixed records.
type Field interface {
	// Encode writes exactly Length() bytes into dst.
	Encode(dst []byte)

	Type() Type

	String() string

	// Equals is exact typed equality: same variant and, for CHAR, the same
	// bytes including padding.
	Equals(other Field) bool

	Length() int
}

// Row is an ordered sequence of fields in column-declaration order.
type Row []Field

// Strings renders every field of the row with String.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.String()
	}
	return out
}
