package statements

import (
	"fmt"

	"minisql/pkg/types"
)

// Predicate is the only filter form: <column> = <literal>.
type Predicate struct {
	Column string
	Value  types.Literal
	Pos    int
}

func NewPredicate(column string, value types.Literal, pos int) *Predicate {
	return &Predicate{Column: column, Value: value, Pos: pos}
}

func (p *Predicate) String() string {
	return fmt.Sprintf("%s = %s", p.Column, p.Value)
}

// Assignment is the SET clause of an UPDATE: <column> = <literal>.
type Assignment struct {
	Column string
	Value  types.Literal
	Pos    int
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Column, a.Value)
}
