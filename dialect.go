package sqlbind

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed templates a Dialect keeps.
const DefaultCacheSize = 512

// Dialect defines the way values are quoted in a rendered statement.
//
// MySQL is a default dialect. Identifiers are quoted with backticks,
// text with single quotes, embedded quote characters are left as is:
//
//	sql, err := sqlbind.Render("SELECT ?# FROM t WHERE name = ?", "name", "O'Brien")
//	// SELECT `name` FROM t WHERE name = 'O'Brien'
//
// MySQLEscaped and PostgreSQL double quote characters found inside
// values. Select a dialect for a statement:
//
//	sql, err := sqlbind.PostgreSQL.Render("SELECT ?# FROM t", "name")
//	// SELECT "name" FROM t
//
// or as default:
//
//	sqlbind.SetDialect(sqlbind.PostgreSQL)
type Dialect struct {
	name            string
	identQuote      byte
	textQuote       byte
	escapeQuotes    bool
	escapeBackslash bool

	cacheSize int
	cacheOnce sync.Once
	cache     *lru.Cache[string, *parsedTemplate]
}

var (
	// MySQL quotes identifiers with backticks and does not escape values.
	MySQL = newDialect("mysql", '`', false, false, DefaultCacheSize)
	// MySQLEscaped is MySQL with quote characters and backslashes
	// inside values doubled.
	MySQLEscaped = newDialect("mysql", '`', true, true, DefaultCacheSize)
	// PostgreSQL quotes identifiers with double quotes and doubles
	// quote characters inside values.
	PostgreSQL = newDialect("postgresql", '"', true, false, DefaultCacheSize)
)

func newDialect(name string, identQuote byte, escapeQuotes, escapeBackslash bool, cacheSize int) *Dialect {
	return &Dialect{
		name:            name,
		identQuote:      identQuote,
		textQuote:       '\'',
		escapeQuotes:    escapeQuotes,
		escapeBackslash: escapeBackslash,
		cacheSize:       cacheSize,
	}
}

var defaultDialect atomic.Pointer[Dialect]

func init() {
	defaultDialect.Store(MySQL)
}

/*
SetDialect selects a Dialect to be used by Render.

	sqlbind.SetDialect(sqlbind.PostgreSQL)
*/
func SetDialect(d *Dialect) {
	defaultDialect.Store(d)
}

// DefaultDialect returns the Dialect used by Render.
func DefaultDialect() *Dialect {
	return defaultDialect.Load()
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// EscapesQuotes reports whether quote characters inside values are doubled.
func (d *Dialect) EscapesQuotes() bool {
	return d.escapeQuotes
}

/*
Render renders a template with the default Dialect.

Placeholders are substituted with parameters in order:

	?	the parameter kind decides the format: an integer, a float,
		a boolean (1 or 0), quoted text or NULL
	?d	an integer or NULL
	?f	a float or NULL
	?a	a list: v1, v2 or, for associative lists, `k1` = v1, `k2` = v2
	?#	an identifier or a list of identifiers

A template fragment enclosed in { } is omitted together with its
parameters if any of them is the skip marker:

	sql, err := sqlbind.Render("SELECT name FROM users WHERE ?# IN (?a){ AND block = ?d}",
		"user_id", []int{1, 2, 3}, sqlbind.Skip())
	// SELECT name FROM users WHERE `user_id` IN (1, 2, 3)

Parameters are Values or Go values accepted by ValueOf.
*/
func Render(template string, params ...interface{}) (string, error) {
	return DefaultDialect().Render(template, params...)
}

// Render renders a template. See the package level Render for the syntax.
func (d *Dialect) Render(template string, params ...interface{}) (string, error) {
	t := d.parse(template)
	if err := t.validate(len(params)); err != nil {
		return "", err
	}
	values, err := valuesOf(params)
	if err != nil {
		return "", err
	}

	st := getState()
	defer putState(st)

	if err := st.resolve(t, values); err != nil {
		return "", err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := d.substitute(buf, st); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// substitute writes the resolved template to buf replacing placeholders
// with formatted parameters.
func (d *Dialect) substitute(buf *bytebufferpool.ByteBuffer, st *renderState) error {
	argNo := 0
	for _, tok := range st.tokens {
		switch tok.kind {
		case tokText:
			buf.WriteString(tok.text)
		case tokPlaceholder:
			if err := d.writeValue(buf, st.params[argNo], tok.spec); err != nil {
				return errors.WithMessagef(err, "parameter %d at offset %d", st.argNo[argNo], tok.pos)
			}
			argNo++
		}
	}
	return nil
}

/*
FormatValue formats a single parameter as a given placeholder
specifier would. Use 0 for a placeholder without specifier.

	s, _ := sqlbind.MySQL.FormatValue(sqlbind.M{"a": 1, "b": "x"}, 'a')
	// `a` = 1, `b` = 'x'
*/
func (d *Dialect) FormatValue(param interface{}, spec rune) (string, error) {
	v, err := ValueOf(param)
	if err != nil {
		return "", err
	}
	if spec == 0 {
		spec = specNone
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := d.writeValue(buf, v, spec); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// QuoteIdentifier quotes name as an identifier.
func (d *Dialect) QuoteIdentifier(name string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	d.writeQuoted(buf, name, d.identQuote)
	return buf.String()
}

// QuoteText quotes s as a text literal.
func (d *Dialect) QuoteText(s string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	d.writeQuoted(buf, s, d.textQuote)
	return buf.String()
}
