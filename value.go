package sqlbind

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindList
	KindSkip
)

var kindNames = [...]string{
	KindNull:  "null",
	KindBool:  "bool",
	KindInt:   "int",
	KindFloat: "float",
	KindText:  "text",
	KindList:  "list",
	KindSkip:  "skip",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

/*
Value is a template parameter.

A Value holds exactly one of: null, a boolean, an integer, a float,
a text string, a list of values or the skip marker returned by Skip.

Lists are either sequential:

	sqlbind.List(sqlbind.Int(1), sqlbind.Text("x"))

or associative, with keys kept in the given order:

	sqlbind.Assoc(sqlbind.Pair{"a", sqlbind.Int(1)}, sqlbind.Pair{"b", sqlbind.Text("x")})

The zero Value is null.
*/
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
	keys  []string
}

// Pair is a single key/value element of an associative list.
type Pair struct {
	Key   string
	Value Value
}

// Null returns a null Value. It renders as NULL.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// List returns a sequential list Value.
func List(items ...Value) Value {
	return Value{kind: KindList, items: copyValues(items)}
}

// Assoc returns an associative list Value. Pair order is preserved.
func Assoc(pairs ...Pair) Value {
	v := Value{
		kind:  KindList,
		items: make([]Value, len(pairs)),
		keys:  make([]string, len(pairs)),
	}
	for n, p := range pairs {
		v.keys[n] = p.Key
		v.items[n] = p.Value
	}
	return v
}

var skipValue = Value{kind: KindSkip}

/*
Skip returns the skip marker.

A conditional block is dropped from a rendered statement
when any parameter it covers is the skip marker:

	sql, err := sqlbind.Render("SELECT * FROM t{ WHERE deleted = ?d}", sqlbind.Skip())
	// sql == "SELECT * FROM t"

The marker is a distinct kind of Value and never equals
a text parameter, whatever the text is.
*/
func Skip() Value { return skipValue }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsSkip reports whether v is the skip marker.
func (v Value) IsSkip() bool { return v.kind == KindSkip }

// IsAssoc reports whether v is an associative list.
func (v Value) IsAssoc() bool { return v.kind == KindList && v.keys != nil }

// Bool returns the boolean held by v and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the integer held by v and whether v is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the float held by v and whether v is a float.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Text returns the string held by v and whether v is a text value.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindText }

// Len returns the number of list elements. It is 0 for non-list values.
func (v Value) Len() int { return len(v.items) }

// Index returns the n-th list element.
func (v Value) Index(n int) Value { return v.items[n] }

// Key returns the key of the n-th element of an associative list,
// or an empty string for a sequential one.
func (v Value) Key(n int) string {
	if v.keys == nil {
		return ""
	}
	return v.keys[n]
}

// String returns a debug representation of v. Use Render to format SQL.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindList:
		var sb strings.Builder
		sb.WriteByte('[')
		for n, item := range v.items {
			if n > 0 {
				sb.WriteString(", ")
			}
			if v.keys != nil {
				sb.WriteString(v.keys[n])
				sb.WriteString(": ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindSkip:
		return "skip"
	}
	return v.kind.String()
}

func copyValues(src []Value) []Value {
	if src == nil {
		return []Value{}
	}
	dst := make([]Value, len(src))
	copy(dst, src)
	return dst
}
