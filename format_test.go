package sqlbind_test

import (
	"math"
	"testing"

	"github.com/leporo/sqlbind"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    interface{}
		spec     rune
		expected string
	}{
		{nil, 0, "NULL"},
		{nil, 'd', "NULL"},
		{nil, 'f', "NULL"},
		{42, 0, "42"},
		{-7, 'd', "-7"},
		{3.99, 'd', "3"},
		{-3.99, 'd', "-3"},
		{true, 'd', "1"},
		{false, 'd', "0"},
		{" 12 ", 'd', "12"},
		{"1e3", 'd', "1000"},
		{1.5, 0, "1.5"},
		{2.0, 0, "2"},
		{1e20, 'f', "100000000000000000000"},
		{3, 'f', "3"},
		{"2.25", 'f', "2.25"},
		{true, 'f', "1"},
		{true, 0, "1"},
		{false, 0, "0"},
		{"abc", 0, "'abc'"},
		{"", 0, "''"},
		{"col", '#', "`col`"},
		{[]string{"a", "b"}, '#', "`a`, `b`"},
		{sqlbind.M{"alias": "col"}, '#', "`alias` = `col`"},
		{[]interface{}{1, "x", nil, 2.5, true}, 'a', "1, 'x', NULL, 2.5, 1"},
		{[]int{}, 'a', ""},
		{sqlbind.M{"a": 1, "b": "x"}, 'a', "`a` = 1, `b` = 'x'"},
		{sqlbind.Assoc(
			sqlbind.Pair{Key: "b", Value: sqlbind.Int(2)},
			sqlbind.Pair{Key: "a", Value: sqlbind.Null()},
		), 'a', "`b` = 2, `a` = NULL"},
	}

	for _, test := range tests {
		s, err := sqlbind.MySQL.FormatValue(test.value, test.spec)
		if assert.NoError(t, err, "%v ?%c", test.value, test.spec) {
			assert.Equal(t, test.expected, s, "%v ?%c", test.value, test.spec)
		}
	}
}

func TestFormatValueErrors(t *testing.T) {
	tests := []struct {
		value interface{}
		spec  rune
		err   error
	}{
		{1, 'x', sqlbind.ErrUnknownSpecifier},
		{nil, 'x', sqlbind.ErrUnknownSpecifier},
		{1, ')', sqlbind.ErrUnknownSpecifier},
		{sqlbind.Skip(), 'x', sqlbind.ErrUnknownSpecifier},
		{nil, 'a', sqlbind.ErrForbiddenSpecifierForNull},
		{nil, '#', sqlbind.ErrForbiddenSpecifierForNull},
		{[]int{1}, 0, sqlbind.ErrForbiddenInferredType},
		{sqlbind.M{"a": 1}, 0, sqlbind.ErrForbiddenInferredType},
		{sqlbind.Skip(), 0, sqlbind.ErrForbiddenInferredType},
		{sqlbind.Skip(), 'd', sqlbind.ErrSkipOutsideBlock},
		{[]interface{}{1, sqlbind.Skip()}, 'a', sqlbind.ErrSkipOutsideBlock},
		{"abc", 'd', sqlbind.ErrInvalidValue},
		{"abc", 'f', sqlbind.ErrInvalidValue},
		{[]int{1}, 'd', sqlbind.ErrInvalidValue},
		{[]int{1}, 'f', sqlbind.ErrInvalidValue},
		{1e30, 'd', sqlbind.ErrInvalidValue},
		{math.NaN(), 'f', sqlbind.ErrInvalidValue},
		{math.Inf(1), 0, sqlbind.ErrInvalidValue},
		{1, 'a', sqlbind.ErrInvalidValue},
		{1, '#', sqlbind.ErrInvalidValue},
		{[]interface{}{"a", 1}, '#', sqlbind.ErrInvalidValue},
		{[]interface{}{[]int{1}}, 'a', sqlbind.ErrInvalidValue},
	}

	for _, test := range tests {
		s, err := sqlbind.MySQL.FormatValue(test.value, test.spec)
		assert.ErrorIs(t, err, test.err, "%v ?%c", test.value, test.spec)
		assert.Empty(t, s)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "`a`b`", sqlbind.MySQL.QuoteIdentifier("a`b"))
	assert.Equal(t, "`a``b`", sqlbind.MySQLEscaped.QuoteIdentifier("a`b"))
	assert.Equal(t, `"a""b"`, sqlbind.PostgreSQL.QuoteIdentifier(`a"b`))
	assert.Equal(t, `'it's'`, sqlbind.MySQL.QuoteText("it's"))
	assert.Equal(t, `'it''s \\'`, sqlbind.MySQLEscaped.QuoteText(`it's \`))
	assert.Equal(t, `'it''s \'`, sqlbind.PostgreSQL.QuoteText(`it's \`))
}
