package interval

import (
	"cmp"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type IntInterval [2]int

func (i IntInterval) Key() int { return i[0] }
func (i IntInterval) End() int { return i[1] }

func (i IntInterval) compare(o IntInterval) int {
	if c := cmp.Compare(i.Key(), o.Key()); c != 0 {
		return c
	}
	return cmp.Compare(i.End(), o.End())
}

func makeIntSet(hasEnd func(IntInterval) bool) *Set[IntInterval, int] {
	return MakeSet(
		cmp.Compare[int],
		IntInterval.compare,
		IntInterval.Key,
		IntInterval.End,
		hasEnd,
	)
}

// isPoint treats intervals whose end precedes their key as points.
func isPoint(i IntInterval) bool { return i.End() < i.Key() }

func collect(it Iterator[IntInterval, int], bounds IntInterval) []IntInterval {
	var got []IntInterval
	for it.FirstOverlap(bounds); it.Valid(); it.NextOverlap() {
		got = append(got, it.Cur())
	}
	return got
}

func TestIntervalTree(t *testing.T) {
	tree := makeIntSet(nil)
	items := []IntInterval{{1, 2}, {2, 3}, {2, 4}, {3, 3}, {3, 4}}
	for _, item := range []IntInterval{{3, 4}, {2, 3}, {1, 2}, {3, 3}, {2, 4}} {
		_, replaced := tree.Upsert(item)
		require.False(t, replaced)
	}
	require.Equal(t, len(items), tree.Len())
	require.NoError(t, tree.t.Verify())
	iter := tree.Iterator()
	iter.First()
	for _, exp := range items {
		require.Equal(t, exp, iter.Cur())
		iter.Next()
	}
	require.False(t, iter.Valid())

	// [3, 3) is empty and overlaps nothing.
	require.Equal(t, []IntInterval{{2, 4}, {3, 4}}, collect(tree.Iterator(), IntInterval{3, 10}))
	require.Equal(t, []IntInterval{{1, 2}}, collect(tree.Iterator(), IntInterval{0, 2}))
	require.Empty(t, collect(tree.Iterator(), IntInterval{4, 6}))
	require.Empty(t, collect(tree.Iterator(), IntInterval{-3, 1}))

	removed, ok := tree.Delete(IntInterval{2, 4})
	require.True(t, ok)
	require.Equal(t, IntInterval{2, 4}, removed)
	_, ok = tree.Delete(IntInterval{2, 4})
	require.False(t, ok)
	require.NoError(t, tree.t.Verify())
	require.Equal(t, []IntInterval{{3, 4}}, collect(tree.Iterator(), IntInterval{3, 10}))
}

func TestIntervalPoints(t *testing.T) {
	tree := makeIntSet(func(i IntInterval) bool { return !isPoint(i) })
	// {5, 0} is the point 5.
	for _, item := range []IntInterval{{5, 0}, {1, 5}, {5, 8}, {6, 0}} {
		tree.Upsert(item)
	}
	require.Equal(t, []IntInterval{{5, 0}, {5, 8}}, collect(tree.Iterator(), IntInterval{5, 0}))
	require.Equal(t, []IntInterval{{1, 5}, {5, 0}, {5, 8}}, collect(tree.Iterator(), IntInterval{4, 6}))
	require.Equal(t, []IntInterval{{5, 8}, {6, 0}}, collect(tree.Iterator(), IntInterval{6, 0}))
}

func TestNextOverlapWithoutFirstOverlap(t *testing.T) {
	tree := makeIntSet(nil)
	tree.Upsert(IntInterval{1, 3})
	tree.Upsert(IntInterval{2, 4})
	it := tree.Iterator()
	it.First()
	require.True(t, it.Valid())
	it.NextOverlap()
	require.False(t, it.Valid())

	empty := makeIntSet(nil)
	require.Empty(t, collect(empty.Iterator(), IntInterval{0, 10}))
}

func TestUpsertRefreshesBounds(t *testing.T) {
	// Intervals with equal keys compare equal, so Upsert replaces the end.
	tree := MakeSet(
		cmp.Compare[int],
		func(a, b IntInterval) int { return 0 },
		IntInterval.Key,
		IntInterval.End,
		nil,
	)
	for i := 0; i < 10; i++ {
		tree.Upsert(IntInterval{i, i + 1})
	}
	require.Empty(t, collect(tree.Iterator(), IntInterval{20, 30}))
	old, replaced := tree.Upsert(IntInterval{3, 25})
	require.True(t, replaced)
	require.Equal(t, IntInterval{3, 4}, old)
	require.Equal(t, []IntInterval{{3, 25}}, collect(tree.Iterator(), IntInterval{20, 30}))
	require.NoError(t, tree.t.Verify())
}

func TestOverlapRandomized(t *testing.T) {
	t.Parallel()
	const (
		n       = 500
		keySpan = 1000
		maxLen  = 50
		queries = 200
	)
	rng := rand.New(rand.NewSource(rand.Int63()))
	hasEnd := func(i IntInterval) bool { return !isPoint(i) }
	tree := makeIntSet(hasEnd)
	u := &updater[IntInterval, int]{
		key:    IntInterval.Key,
		end:    IntInterval.End,
		cmp:    cmp.Compare[int],
		hasEnd: hasEnd,
	}
	var all []IntInterval
	randInterval := func() IntInterval {
		k := rng.Intn(keySpan)
		if rng.Intn(10) == 0 {
			return IntInterval{k, -1}
		}
		return IntInterval{k, k + 1 + rng.Intn(maxLen)}
	}
	for i := 0; i < n; i++ {
		item := randInterval()
		if _, replaced := tree.Upsert(item); !replaced {
			all = append(all, item)
		}
	}
	for i := 0; i < n/4; i++ {
		idx := rng.Intn(len(all))
		_, ok := tree.Delete(all[idx])
		require.True(t, ok)
		all = append(all[:idx], all[idx+1:]...)
	}
	require.Equal(t, len(all), tree.Len())
	require.NoError(t, tree.t.Verify())
	sort.Slice(all, func(i, j int) bool { return all[i].compare(all[j]) < 0 })
	for q := 0; q < queries; q++ {
		bounds := randInterval()
		var exp []IntInterval
		for _, item := range all {
			if u.overlaps(item, bounds) {
				exp = append(exp, item)
			}
		}
		require.Equal(t, exp, collect(tree.Iterator(), bounds), "bounds %v", bounds)
	}
}
