package filter

import (
	"fmt"
	"strconv"
)

// Shape is the lexical kind of a literal.
type Shape int

const (
	// Text literals are single-quoted.
	Text Shape = iota
	// Numeric literals are bare decimal integers.
	Numeric
)

func (s Shape) String() string {
	if s == Numeric {
		return "numeric"
	}
	return "text"
}

// OpEq is the only operator the filter endpoint emits.
const OpEq = "="

// conjunction separates adjacent predicates in the rendered clause.
const conjunction = " AND\n    "

// literalOverrides forces a literal kind for specific columns regardless of
// their content. Phone numbers keep leading zeros, so they stay quoted.
var literalOverrides = map[string]Shape{
	"phone": Text,
}

// Classify reports Numeric when value is non-empty and made only of ASCII
// decimal digits.
func Classify(value string) Shape {
	if value == "" {
		return Text
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return Text
		}
	}
	return Numeric
}

// LiteralKind is Classify with the per-column override table applied.
func LiteralKind(column, value string) Shape {
	if kind, ok := literalOverrides[column]; ok {
		return kind
	}
	return Classify(value)
}

// Predicate is one equality test in a WHERE clause.
type Predicate struct {
	Column   string
	Operator string
	Literal  string
	Kind     Shape
}

// NewPredicate builds an equality predicate, inferring the literal kind.
func NewPredicate(column, value string) Predicate {
	return Predicate{
		Column:   column,
		Operator: OpEq,
		Literal:  value,
		Kind:     LiteralKind(column, value),
	}
}

// String renders the predicate with its literal inlined.
// Text literals are not escaped.
func (p Predicate) String() string {
	if p.Kind == Numeric {
		return fmt.Sprintf("%s %s %s", p.Column, p.Operator, p.Literal)
	}
	return fmt.Sprintf("%s%s'%s'", p.Column, p.Operator, p.Literal)
}

// Placeholder renders the predicate with a bind marker instead of the literal.
func (p Predicate) Placeholder() string {
	return fmt.Sprintf("%s %s ?", p.Column, p.Operator)
}

// Value returns the literal typed for binding: int64 for numeric literals,
// string otherwise.
func (p Predicate) Value() any {
	if p.Kind == Numeric {
		if n, err := strconv.ParseInt(p.Literal, 10, 64); err == nil {
			return n
		}
	}
	return p.Literal
}

// BuildPredicate renders a single predicate fragment. Fragments after the
// first are prefixed with the AND conjunction.
func BuildPredicate(column, value string, isFirst bool) string {
	return fragment(NewPredicate(column, value), isFirst)
}

func fragment(p Predicate, isFirst bool) string {
	if isFirst {
		return p.String()
	}
	return conjunction + p.String()
}
