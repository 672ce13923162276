package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zxc72608/bigquery/internal/entity"
)

// KeyID is the composite identity/name filter key.
const KeyID = "id"

// Field describes one recognized filter key.
type Field struct {
	Key string
	// Shape is the required shape of the raw value. Ignored when Inferred.
	Shape Shape
	// Inferred fields pick their column from the value's shape.
	Inferred bool
	// Columns overrides the target column per logical entity. Unlisted
	// entities use Key.
	Columns map[string]string
}

// Fields is the fixed, ordered set of recognized filters.
var Fields = []Field{
	{Key: KeyID, Inferred: true},
	{Key: "branch_id", Shape: Numeric},
	{Key: "salary", Shape: Numeric},
	{Key: "sex", Shape: Text},
	{Key: "sup_id", Shape: Numeric},
	{Key: "phone", Shape: Numeric},
}

// Keys returns the recognized filter keys in processing order.
func Keys() []string {
	keys := make([]string, len(Fields))
	for i, f := range Fields {
		keys[i] = f.Key
	}
	return keys
}

// ValidationError identifies the filter that rejected its value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Clause is an ordered conjunction of predicates. The zero value means no
// filtering.
type Clause []Predicate

// Empty reports whether the clause filters nothing.
func (c Clause) Empty() bool {
	return len(c) == 0
}

// String renders the clause with literals inlined.
func (c Clause) String() string {
	var b strings.Builder
	started := false
	for _, p := range c {
		b.WriteString(fragment(p, !started))
		started = true
	}
	return b.String()
}

// Placeholders renders the clause with bind markers, in the same order as Args.
func (c Clause) Placeholders() string {
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = p.Placeholder()
	}
	return strings.Join(parts, " AND ")
}

// Args returns the bind values in predicate order.
func (c Clause) Args() []any {
	args := make([]any, len(c))
	for i, p := range c {
		args[i] = p.Value()
	}
	return args
}

// BuildWhere validates raw filter values for an entity and folds the accepted
// ones into a clause. Keys are processed in Fields order; empty values are
// skipped and unrecognized keys ignored. The first invalid value aborts.
func BuildWhere(d entity.Descriptor, raw map[string]string) (Clause, error) {
	var clause Clause
	for _, f := range Fields {
		value := raw[f.Key]
		if value == "" {
			continue
		}

		column, err := f.resolve(d, value)
		if err != nil {
			return nil, err
		}
		clause = append(clause, NewPredicate(column, value))
	}
	return clause, nil
}

// resolve validates value against the field and returns the target column.
func (f Field) resolve(d entity.Descriptor, value string) (string, error) {
	shape := Classify(value)

	if f.Inferred {
		if shape == Numeric {
			if err := f.checkRange(value); err != nil {
				return "", err
			}
			return d.IdentityColumn, nil
		}
		return d.NameColumn, nil
	}

	switch {
	case f.Shape == Numeric && shape != Numeric:
		return "", &ValidationError{Field: f.Key, Reason: "must be numeric"}
	case f.Shape == Text && shape == Numeric:
		return "", &ValidationError{Field: f.Key, Reason: "must not be numeric"}
	}

	column := f.column(d)
	if LiteralKind(column, value) == Numeric {
		if err := f.checkRange(value); err != nil {
			return "", err
		}
	}
	return column, nil
}

func (f Field) column(d entity.Descriptor) string {
	if c, ok := f.Columns[d.LogicalName]; ok {
		return c
	}
	return f.Key
}

func (f Field) checkRange(value string) error {
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return &ValidationError{Field: f.Key, Reason: "out of range for an integer column"}
	}
	return nil
}
