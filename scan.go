package sqlbind

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	marker     = '?'
	blockOpen  = '{'
	blockClose = '}'
	escapeChar = '\\'
)

type tokenKind uint8

const (
	tokText tokenKind = iota
	tokPlaceholder
	tokOpen
	tokClose
)

// token is a piece of a scanned template.
type token struct {
	kind tokenKind
	// pos is the byte offset of the token in the template.
	pos int
	// text holds literal SQL for tokText.
	text string
	// spec is the placeholder specifier, specNone if there is none.
	spec rune
}

// parsedTemplate is the immutable result of scanning a template.
// It is shared between concurrent renders through the dialect cache.
type parsedTemplate struct {
	tokens       []token
	placeholders int
}

/*
scan splits a template into literal text runs, placeholders
and block brackets in a single forward pass.

A placeholder is ? optionally followed by a specifier character.
Any character after ? is a specifier unless it is a blank, a block
bracket or the end of the template.

\?, \{ and \} produce literal characters.
*/
func scan(s string) *parsedTemplate {
	t := &parsedTemplate{
		tokens: make([]token, 0, 8),
	}
	// Literal runs are built from slices of s unless an escape sequence
	// forces a copy.
	var (
		lit      []byte
		litStart = 0
		start    = 0
	)
	flush := func(end int) {
		if lit != nil {
			lit = append(lit, s[start:end]...)
			t.tokens = append(t.tokens, token{kind: tokText, pos: litStart, text: string(lit)})
			lit = nil
		} else if end > start {
			t.tokens = append(t.tokens, token{kind: tokText, pos: litStart, text: s[start:end]})
		}
	}

	for pos := 0; pos < len(s); {
		switch s[pos] {
		case escapeChar:
			if pos+1 < len(s) && isEscapable(s[pos+1]) {
				if lit == nil {
					lit = make([]byte, 0, pos-start+8)
				}
				lit = append(lit, s[start:pos]...)
				lit = append(lit, s[pos+1])
				pos += 2
				start = pos
				continue
			}
		case marker:
			flush(pos)
			tok := token{kind: tokPlaceholder, pos: pos, spec: specNone}
			pos++
			if pos < len(s) && !isSpecifierTerminator(s[pos]) {
				r, size := utf8.DecodeRuneInString(s[pos:])
				tok.spec = r
				pos += size
			}
			t.tokens = append(t.tokens, tok)
			t.placeholders++
			start, litStart = pos, pos
			continue
		case blockOpen, blockClose:
			flush(pos)
			kind := tokOpen
			if s[pos] == blockClose {
				kind = tokClose
			}
			t.tokens = append(t.tokens, token{kind: kind, pos: pos})
			pos++
			start, litStart = pos, pos
			continue
		}
		pos++
	}
	flush(len(s))
	return t
}

func isEscapable(c byte) bool {
	return c == marker || c == blockOpen || c == blockClose
}

func isSpecifierTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', blockOpen, blockClose:
		return true
	}
	return false
}

// validate checks the placeholder count against the number of parameters.
func (t *parsedTemplate) validate(params int) error {
	if t.placeholders != params {
		return errors.Wrapf(ErrCountMismatch, "%d placeholders, %d parameters", t.placeholders, params)
	}
	return nil
}
