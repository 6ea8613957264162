package sqlbind

import (
	"github.com/pkg/errors"
)

// renderState holds the working copy of a template and its parameters
// for a single render call.
type renderState struct {
	tokens []token
	params []Value
	// argNo maps a working parameter back to its position in the
	// caller's parameter list.
	argNo []int
}

/*
resolve rewrites the scanned template into st, removing conditional blocks.

A block covering the skip marker is dropped along with the parameters
of its placeholders. Brackets of any other block are dropped and
its content is kept.

The number of placeholders in t must already match len(params).
*/
func (st *renderState) resolve(t *parsedTemplate, params []Value) error {
	var (
		next       = 0
		open       = -1
		blockFirst = 0
	)
	for n, tok := range t.tokens {
		switch tok.kind {
		case tokOpen:
			if open >= 0 {
				return errors.Wrapf(ErrUnbalancedBlock, "nested '{' at offset %d", tok.pos)
			}
			open = n
			blockFirst = next
		case tokClose:
			if open < 0 {
				return errors.Wrapf(ErrUnbalancedBlock, "unmatched '}' at offset %d", tok.pos)
			}
			if !containsSkip(params[blockFirst:next]) {
				st.tokens = append(st.tokens, t.tokens[open+1:n]...)
				for i := blockFirst; i < next; i++ {
					st.addParam(params[i], i)
				}
			}
			open = -1
		case tokPlaceholder:
			if open < 0 {
				st.tokens = append(st.tokens, tok)
				st.addParam(params[next], next)
			}
			next++
		default:
			if open < 0 {
				st.tokens = append(st.tokens, tok)
			}
		}
	}
	if open >= 0 {
		return errors.Wrapf(ErrUnbalancedBlock, "unmatched '{' at offset %d", t.tokens[open].pos)
	}
	return nil
}

func (st *renderState) addParam(v Value, argNo int) {
	st.params = append(st.params, v)
	st.argNo = append(st.argNo, argNo)
}
