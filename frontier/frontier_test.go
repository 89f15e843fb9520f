package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainpath/frontier"
	"github.com/katalvlaran/terrainpath/terrain"
)

// TestEmpty covers a fresh queue and popping past the end.
func TestEmpty(t *testing.T) {
	f := frontier.New(0)
	assert.True(t, f.Empty())
	assert.Equal(t, 0, f.Len())

	_, _, ok := f.Pop()
	assert.False(t, ok)

	f.Push(terrain.Cell{X: 1, Y: 1}, 4)
	assert.False(t, f.Empty())
	_, _, ok = f.Pop()
	assert.True(t, ok)
	assert.True(t, f.Empty())
}

// TestPopOrder verifies ascending keys regardless of push order.
func TestPopOrder(t *testing.T) {
	f := frontier.New(8)
	keys := []int64{7, 3, 9, 1, 5, 2}
	for i, k := range keys {
		f.Push(terrain.Cell{X: i, Y: 0}, k)
	}

	var got []int64
	for !f.Empty() {
		_, k, ok := f.Pop()
		require.True(t, ok)
		got = append(got, k)
	}
	assert.Equal(t, []int64{1, 2, 3, 5, 7, 9}, got)
}

// TestDuplicates checks that the same cell may be queued with several keys and
// every copy is eventually returned.
func TestDuplicates(t *testing.T) {
	f := frontier.New(4)
	c := terrain.Cell{X: 2, Y: 3}
	f.Push(c, 10)
	f.Push(c, 6)
	f.Push(c, 8)
	require.Equal(t, 3, f.Len())

	for _, want := range []int64{6, 8, 10} {
		cell, k, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, c, cell)
		assert.Equal(t, want, k)
	}
}

// TestTieBreakFIFO verifies that equal keys pop in insertion order.
func TestTieBreakFIFO(t *testing.T) {
	f := frontier.New(4)
	order := []terrain.Cell{{X: 3, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 0}}
	for _, c := range order {
		f.Push(c, 5)
	}
	f.Push(terrain.Cell{X: 9, Y: 9}, 4)

	first, _, _ := f.Pop()
	assert.Equal(t, terrain.Cell{X: 9, Y: 9}, first)
	for _, want := range order {
		got, _, _ := f.Pop()
		assert.Equal(t, want, got)
	}
}

// TestRandomised compares against a sorted reference on a deterministic stream.
func TestRandomised(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	f := frontier.New(0)
	var ref []int64
	for i := 0; i < 500; i++ {
		k := int64(r.Intn(100))
		f.Push(terrain.Cell{X: i, Y: i}, k)
		ref = append(ref, k)
	}
	sort.Slice(ref, func(i, j int) bool { return ref[i] < ref[j] })

	for _, want := range ref {
		_, k, ok := f.Pop()
		require.True(t, ok)
		require.Equal(t, want, k)
	}
	assert.True(t, f.Empty())
}
