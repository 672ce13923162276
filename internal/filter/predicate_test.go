package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		value string
		want  Shape
	}{
		{"42", Numeric},
		{"0", Numeric},
		{"0912345678", Numeric},
		{"", Text},
		{"Alice", Text},
		{"-1", Text},
		{"4.2", Text},
		{" 42", Text},
		{"42a", Text},
		{"٣", Text},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value))
		})
	}
}

func TestLiteralKind_PhoneOverride(t *testing.T) {
	assert.Equal(t, Text, LiteralKind("phone", "0912345678"))
	assert.Equal(t, Numeric, LiteralKind("salary", "50000"))
}

func TestBuildPredicate(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		value   string
		isFirst bool
		want    string
	}{
		{"numeric first", "client_id", "42", true, "client_id = 42"},
		{"text first", "name", "Alice", true, "name='Alice'"},
		{"numeric after", "salary", "50000", false, " AND\n    salary = 50000"},
		{"text after", "sex", "F", false, " AND\n    sex='F'"},
		{"phone stays quoted", "phone", "0912345678", true, "phone='0912345678'"},
		{"no escaping", "name", "O'Neil", true, "name='O'Neil'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPredicate(tt.column, tt.value, tt.isFirst))
		})
	}
}

func TestPredicate_Value(t *testing.T) {
	assert.Equal(t, int64(42), NewPredicate("client_id", "42").Value())
	assert.Equal(t, "Alice", NewPredicate("name", "Alice").Value())
	assert.Equal(t, "0912345678", NewPredicate("phone", "0912345678").Value())
	// Does not fit int64, falls back to the raw text.
	assert.Equal(t, "99999999999999999999", NewPredicate("salary", "99999999999999999999").Value())
}

func TestPredicate_Placeholder(t *testing.T) {
	assert.Equal(t, "client_id = ?", NewPredicate("client_id", "42").Placeholder())
	assert.Equal(t, "phone = ?", NewPredicate("phone", "0912345678").Placeholder())
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "numeric", Numeric.String())
	assert.Equal(t, "text", Text.String())
}
