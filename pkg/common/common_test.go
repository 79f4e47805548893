package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	s := &State{}
	s.Record("b", []string{"b/x"})
	s.Record("a", []string{"a/x"})
	s.Record("b", []string{"b/y"})

	assert.Equal(t, []string{"b", "a"}, s.Processed())
	assert.Equal(t, []string{"b/x", "b/y"}, s.Written("b"))
	assert.Empty(t, s.Written("c"))

	ctx := context.WithValue(context.Background(), ContextState, s)
	assert.Same(t, s, StateFrom(ctx.Value(ContextState)))
	assert.Nil(t, StateFrom(context.Background().Value(ContextState)))
}
