package sqlbind

import (
	"sync"
)

var statePool = sync.Pool{New: newState}

func newState() interface{} {
	return &renderState{
		tokens: make([]token, 0, 16),
		params: make([]Value, 0, 8),
		argNo:  make([]int, 0, 8),
	}
}

func getState() *renderState {
	return statePool.Get().(*renderState)
}

func putState(st *renderState) {
	// Drop references to caller values before the state is reused.
	for n := range st.params {
		st.params[n] = Value{}
	}
	for n := range st.tokens {
		st.tokens[n] = token{}
	}
	st.tokens = st.tokens[:0]
	st.params = st.params[:0]
	st.argNo = st.argNo[:0]
	statePool.Put(st)
}
