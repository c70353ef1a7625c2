package orderstat

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type Int int

func assertIntEq(t *testing.T, exp, got Int) {
	t.Helper()
	if exp != got {
		t.Fatalf("expected %d, got %d", exp, got)
	}
}

func TestOrderStatTree(t *testing.T) {
	tree := MakeOrderStatTree[Int](cmp.Compare[Int])
	tree.Add(2)
	tree.Add(3)
	tree.Add(5)
	tree.Add(4)
	iter := tree.MakeIter()
	iter.First()
	for _, exp := range []Int{2, 3, 4, 5} {
		assertIntEq(t, exp, iter.Cur())
		iter.Next()
	}
	iter.Nth(2)
	assertIntEq(t, 4, iter.Cur())
	iter.Nth(4)
	require.False(t, iter.Valid())
	iter.Nth(-1)
	require.False(t, iter.Valid())

	require.Equal(t, 0, tree.Rank(1))
	require.Equal(t, 0, tree.Rank(2))
	require.Equal(t, 2, tree.Rank(4))
	require.Equal(t, 4, tree.Rank(6))

	v, ok := tree.Nth(0)
	require.True(t, ok)
	assertIntEq(t, 2, v)
	_, ok = tree.Nth(10)
	require.False(t, ok)
}

func TestOrderStatNth(t *testing.T) {
	t.Parallel()
	tree := MakeOrderStatTree[Int](cmp.Compare[Int])
	const maxN = 1000
	N := rand.Intn(maxN)
	items := make([]int, 0, N)
	for i := 0; i < N; i++ {
		items = append(items, i)
	}
	perm := rand.Perm(N)
	for _, idx := range perm {
		tree.Add(Int(items[idx]))
	}
	removePerm := rand.Perm(N)
	retainAll := rand.Float64() < .25
	var removed []int
	for _, idx := range removePerm {
		if !retainAll && rand.Float64() < .05 {
			continue
		}
		require.True(t, tree.Remove(Int(items[idx])))
		removed = append(removed, items[idx])
	}
	t.Logf("removed %d/%d", len(removed), N)
	require.NoError(t, tree.t.Verify())
	for _, i := range removed {
		tree.Add(Int(i))
	}
	require.Equal(t, N, tree.Len())
	require.NoError(t, tree.t.Verify())
	perm = rand.Perm(N)

	iter := tree.MakeIter()
	for _, idx := range perm {
		iter.Nth(idx)
		assertIntEq(t, Int(items[idx]), iter.Cur())
		require.Equal(t, idx, tree.Rank(Int(items[idx])))
		for i := idx + 1; i < N; i++ {
			iter.Next()
			assertIntEq(t, Int(items[i]), iter.Cur())
		}
		iter.Next()
		if iter.Valid() {
			t.Fatal("expected invalid")
		}
	}
}
