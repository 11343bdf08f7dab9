package sequence

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCollect(t *testing.T) {
	it := From([]int{3, 1, 2})
	assert.Equal(t, []int{3, 1, 2}, it.Collect())
	// A second walk sees the same elements.
	assert.Equal(t, []int{3, 1, 2}, it.Collect())
	assert.Equal(t, 3, it.Count())
}

func TestEmptyAndFromSeq(t *testing.T) {
	assert.Zero(t, Empty[int]().Count())
	assert.Zero(t, FromSeq[int](nil).Count())
	assert.Equal(t, []int{1, 2}, FromSeq(From([]int{1, 2}).Seq()).Collect())
}

func TestFilterFindAny(t *testing.T) {
	it := From([]int{1, 2, 3, 4, 5, 6})
	even := it.Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, even.Collect())

	v, ok := it.Find(func(v int) bool { return v > 3 })
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = it.Find(func(v int) bool { return v > 10 })
	assert.False(t, ok)

	assert.True(t, it.Any(func(v int) bool { return v == 6 }))
	assert.True(t, Contains(it, 1))
	assert.False(t, Contains(it, 7))
}

func TestMapSortForEach(t *testing.T) {
	it := Map(From([]int{3, 1, 2}), strconv.Itoa)
	assert.Equal(t, []string{"3", "1", "2"}, it.Collect())

	sorted := From([]int{3, 1, 2}).Sort(func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3}, sorted.Collect())

	sum := 0
	sorted.ForEach(func(v int) { sum += v })
	assert.Equal(t, 6, sum)
}

func TestPull(t *testing.T) {
	next, stop := From([]string{"a", "b"}).Pull()
	defer stop()

	v, ok := next()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = next()
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = next()
	assert.False(t, ok)
}
