package sqlbind

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// Placeholder specifiers. specNone is not a character, a NUL byte
// after ? is an unknown specifier.
const (
	specNone  rune = -1
	specInt   rune = 'd'
	specFloat rune = 'f'
	specList  rune = 'a'
	specIdent rune = '#'
)

var nullKeyword = []byte("NULL")

// writeValue formats v as the kind requested by spec and appends it to buf.
func (d *Dialect) writeValue(buf *bytebufferpool.ByteBuffer, v Value, spec rune) error {
	if v.kind == KindSkip {
		switch spec {
		case specNone:
			return errors.Wrap(ErrForbiddenInferredType, "skip marker outside of conditional block")
		case specInt, specFloat, specList, specIdent:
			return ErrSkipOutsideBlock
		}
	}

	switch spec {
	case specNone:
		switch v.kind {
		case KindNull, KindBool, KindInt, KindFloat, KindText:
			return d.writeScalar(buf, v, d.textQuote)
		}
		return errors.Wrapf(ErrForbiddenInferredType, "%s", v.kind)

	case specInt:
		if v.kind == KindNull {
			buf.Write(nullKeyword)
			return nil
		}
		i, err := toInt(v)
		if err != nil {
			return err
		}
		buf.B = strconv.AppendInt(buf.B, i, 10)
		return nil

	case specFloat:
		if v.kind == KindNull {
			buf.Write(nullKeyword)
			return nil
		}
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		buf.B = strconv.AppendFloat(buf.B, f, 'f', -1, 64)
		return nil

	case specList:
		if v.kind == KindNull {
			return errors.Wrapf(ErrForbiddenSpecifierForNull, "?%c", spec)
		}
		if v.kind != KindList {
			return errors.Wrapf(ErrInvalidValue, "?%c expects a list, got %s", spec, v.kind)
		}
		return d.writeList(buf, v, d.textQuote, false)

	case specIdent:
		switch v.kind {
		case KindNull:
			return errors.Wrapf(ErrForbiddenSpecifierForNull, "?%c", spec)
		case KindText:
			d.writeQuoted(buf, v.s, d.identQuote)
			return nil
		case KindList:
			return d.writeList(buf, v, d.identQuote, true)
		}
		return errors.Wrapf(ErrInvalidValue, "?%c expects text or a list of text, got %s", spec, v.kind)
	}

	return errors.Wrapf(ErrUnknownSpecifier, "?%c", spec)
}

// writeList writes list elements separated by commas.
// Elements of an associative list are written as `key` = value.
func (d *Dialect) writeList(buf *bytebufferpool.ByteBuffer, v Value, quote byte, textOnly bool) error {
	for n, item := range v.items {
		switch {
		case item.kind == KindSkip:
			return errors.Wrapf(ErrSkipOutsideBlock, "list element %d", n)
		case item.kind == KindList:
			return errors.Wrapf(ErrInvalidValue, "list element %d: nested list", n)
		case textOnly && item.kind != KindText:
			return errors.Wrapf(ErrInvalidValue, "list element %d: expected text, got %s", n, item.kind)
		}
		if n > 0 {
			buf.WriteString(", ")
		}
		if v.keys != nil {
			d.writeQuoted(buf, v.keys[n], d.identQuote)
			buf.WriteString(" = ")
		}
		if err := d.writeScalar(buf, item, quote); err != nil {
			return errors.WithMessagef(err, "list element %d", n)
		}
	}
	return nil
}

// writeScalar writes a non-list value, quoting text with quote.
func (d *Dialect) writeScalar(buf *bytebufferpool.ByteBuffer, v Value, quote byte) error {
	switch v.kind {
	case KindNull:
		buf.Write(nullKeyword)
	case KindBool:
		if v.b {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	case KindInt:
		buf.B = strconv.AppendInt(buf.B, v.i, 10)
	case KindFloat:
		if !isFinite(v.f) {
			return errors.Wrapf(ErrInvalidValue, "%v is not a finite number", v.f)
		}
		buf.B = strconv.AppendFloat(buf.B, v.f, 'f', -1, 64)
	case KindText:
		d.writeQuoted(buf, v.s, quote)
	default:
		return errors.Wrapf(ErrInvalidValue, "%s is not a scalar", v.kind)
	}
	return nil
}

// writeQuoted wraps s in quote characters. Embedded quotes are doubled
// only when the dialect escapes quotes.
func (d *Dialect) writeQuoted(buf *bytebufferpool.ByteBuffer, s string, quote byte) {
	buf.WriteByte(quote)
	if !d.escapeQuotes {
		buf.WriteString(s)
		buf.WriteByte(quote)
		return
	}
	start := 0
	for pos := 0; pos < len(s); pos++ {
		c := s[pos]
		if c == quote || (c == '\\' && d.escapeBackslash && quote == d.textQuote) {
			buf.WriteString(s[start : pos+1])
			buf.WriteByte(c)
			start = pos + 1
		}
	}
	buf.WriteString(s[start:])
	buf.WriteByte(quote)
}

func toInt(v Value) (int64, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindFloat:
		if i, ok := floatToInt(v.f); ok {
			return i, nil
		}
		return 0, errors.Wrapf(ErrInvalidValue, "%v does not fit an integer", v.f)
	case KindText:
		s := strings.TrimSpace(v.s)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if i, ok := floatToInt(f); ok {
				return i, nil
			}
		}
		return 0, errors.Wrapf(ErrInvalidValue, "%q is not an integer", v.s)
	}
	return 0, errors.Wrapf(ErrInvalidValue, "%s can not be used as an integer", v.kind)
}

func toFloat(v Value) (float64, error) {
	var f float64
	switch v.kind {
	case KindInt:
		f = float64(v.i)
	case KindBool:
		if v.b {
			f = 1
		}
	case KindFloat:
		f = v.f
	case KindText:
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidValue, "%q is not a number", v.s)
		}
	default:
		return 0, errors.Wrapf(ErrInvalidValue, "%s can not be used as a float", v.kind)
	}
	if !isFinite(f) {
		return 0, errors.Wrapf(ErrInvalidValue, "%v is not a finite number", f)
	}
	return f, nil
}
