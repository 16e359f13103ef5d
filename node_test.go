package rtree

import (
	"bytes"
	"testing"

	"github.com/clbanning/persistrtree/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterateIsRestartable(t *testing.T) {
	policy, err := NewPolicy(4)
	require.NoError(t, err)
	tr := New[int](policy)
	for i := 0; i < 12; i++ {
		tr = tr.Insert(Entry[int]{Pt: pt(float32(i), 0), Value: i})
	}

	collect := func() []int {
		var out []int
		next := tr.Iterate()
		for {
			e, ok := next()
			if !ok {
				break
			}
			out = append(out, e.Value)
		}
		return out
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second)
	assert.Len(t, first, 12)
}

func TestEntriesMatchesIterate(t *testing.T) {
	policy, err := NewPolicy(4)
	require.NoError(t, err)
	tr := New[int](policy)
	for i := 0; i < 9; i++ {
		tr = tr.Insert(Entry[int]{Pt: pt(float32(i), 0), Value: i})
	}

	var fromIter []int
	next := tr.Iterate()
	for {
		e, ok := next()
		if !ok {
			break
		}
		fromIter = append(fromIter, e.Value)
	}

	var fromEntries []int
	for _, e := range tr.Entries() {
		fromEntries = append(fromEntries, e.Value)
	}
	assert.Equal(t, fromEntries, fromIter)
}

func TestPrettyDoesNotPanicAndIncludesEntries(t *testing.T) {
	tr := NewDefault[string]()
	tr = tr.Insert(Entry[string]{Pt: pt(1, 1), Value: "hello"})
	var buf bytes.Buffer
	tr.Pretty(&buf)
	assert.Contains(t, buf.String(), "hello")
}

func TestContractSkipsRegenWhenBoxWraps(t *testing.T) {
	b := box(0, 0, 10, 10)
	regenCalled := false
	got := contract(b, pt(5, 5).ToBox(), func() geom.Box { regenCalled = true; return b })
	assert.Equal(t, b, got)
	assert.False(t, regenCalled)
}

func TestContractCallsRegenWhenBoxDoesNotWrap(t *testing.T) {
	b := box(0, 0, 10, 10)
	shrunk := box(1, 1, 9, 9)
	regenCalled := false
	got := contract(b, pt(0, 5).ToBox(), func() geom.Box {
		regenCalled = true
		return shrunk
	})
	assert.Equal(t, shrunk, got)
	assert.True(t, regenCalled)
}
