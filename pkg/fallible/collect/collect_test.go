package collect

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOver_SingleSequence(t *testing.T) {
	t.Parallel()

	words := slices.Values([]string{"go", "rust", "zig", "gleam"})

	assert.Equal(t, []string{"go", "rust", "zig", "gleam"}, Over(ToSlice[string](), words))
	assert.Equal(t, 4, Over(Counting[string](), words))
	assert.Equal(t, "go|rust|zig|gleam", Over(Joining("|"), words))
	assert.Equal(t, 14, Over(Summing(func(s string) int { return len(s) }), words))
}

func TestOver_CombinesPartsInOrder(t *testing.T) {
	t.Parallel()

	a := slices.Values([]int{1, 2})
	b := slices.Values([]int{3})
	c := slices.Values([]int{4, 5})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, Over(ToSlice[int](), a, b, c))
	assert.Equal(t, 5, Over(Counting[int](), a, b, c))
	assert.Nil(t, Over(ToSlice[int]()))
}

func TestToSet(t *testing.T) {
	t.Parallel()

	set := Over(ToSet[string](), slices.Values([]string{"a", "b", "a"}), slices.Values([]string{"c", "b"}))
	assert.Len(t, set, 3)
	assert.Contains(t, set, "c")
}

func TestToMap_Merges(t *testing.T) {
	t.Parallel()

	lengths := Over(
		ToMap(
			func(s string) byte { return s[0] },
			func(s string) int { return len(s) },
			func(a, b int) int { return a + b },
		),
		slices.Values([]string{"ab", "abc", "b"}),
		slices.Values([]string{"a"}),
	)

	assert.Equal(t, map[byte]int{'a': 6, 'b': 1}, lengths)
}

func TestGroupingBy(t *testing.T) {
	t.Parallel()

	groups := Over(GroupingBy(func(s string) string { return strings.ToLower(s[:1]) }),
		slices.Values([]string{"Apple", "banana", "avocado", "Blueberry", "cherry"}))

	assert.Equal(t, map[string][]string{
		"a": {"Apple", "avocado"},
		"b": {"banana", "Blueberry"},
		"c": {"cherry"},
	}, groups)
}

func TestPartitioningBy(t *testing.T) {
	t.Parallel()

	parts := Over(PartitioningBy(func(n int) bool { return n > 10 }), slices.Values([]int{1, 2, 3}))

	assert.Equal(t, []int{}, parts[true])
	assert.Equal(t, []int{1, 2, 3}, parts[false])
}
