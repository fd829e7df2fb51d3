package collection

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ar90n/prioritree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants walks every node reachable from the root and verifies the
// tree, chain and size bookkeeping.
func checkInvariants[T any](t *testing.T, q *BstPriorityQueue[T]) {
	t.Helper()

	count := 0
	var walk func(n, parent *node[T], lo, hi *int)
	walk = func(n, parent *node[T], lo, hi *int) {
		if n == nil {
			return
		}
		count++
		require.Same(t, parent, n.parent, "parent of priority %d", n.priority)
		if lo != nil {
			require.Less(t, *lo, n.priority)
		}
		if hi != nil {
			require.Less(t, n.priority, *hi)
		}
		require.Equal(t, n.link != nil, n.dup, "dup flag of priority %d", n.priority)

		prev := n
		for c := n.link; c != nil; c = c.link {
			count++
			require.Equal(t, n.priority, c.priority)
			require.Same(t, prev, c.parent)
			require.Nil(t, c.left)
			require.Nil(t, c.right)
			require.False(t, c.dup)
			prev = c
		}

		p := n.priority
		walk(n.left, n, lo, &p)
		walk(n.right, n, &p, hi)
	}
	walk(q.root, nil, nil, nil)

	require.Equal(t, q.size, count)
}

func TestBstPriorityQueue_Enqueue(t *testing.T) {
	type input struct {
		value    string
		priority int
	}

	tests := []struct {
		name     string
		inputs   []input
		wantSize int
		wantStr  string
	}{
		{
			name:     "empty",
			wantSize: 0,
			wantStr:  "",
		},
		{
			name:     "single",
			inputs:   []input{{"a", 1}},
			wantSize: 1,
			wantStr:  "1 value: a\n",
		},
		{
			name:     "unique priorities",
			inputs:   []input{{"hello", 2}, {"world", 1}, {"!", 3}},
			wantSize: 3,
			wantStr:  "1 value: world\n2 value: hello\n3 value: !\n",
		},
		{
			name:     "duplicate priorities",
			inputs:   []input{{"a", 1}, {"b", 2}, {"c", 2}, {"d", 3}, {"e", 3}},
			wantSize: 5,
			wantStr:  "1 value: a\n2 value: b\n2 value: c\n3 value: d\n3 value: e\n",
		},
		{
			name:     "negative priorities",
			inputs:   []input{{"x", 0}, {"y", -5}, {"z", -5}},
			wantSize: 3,
			wantStr:  "-5 value: y\n-5 value: z\n0 value: x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewBstPriorityQueue[string]()
			for i, in := range tt.inputs {
				q.Enqueue(in.value, in.priority)
				assert.Equal(t, i+1, q.Size())
				checkInvariants(t, q)
			}

			assert.Equal(t, tt.wantSize, q.Len())
			assert.Equal(t, tt.wantStr, q.String())
		})
	}
}

func TestBstPriorityQueue_EnqueueShape(t *testing.T) {
	q := NewBstPriorityQueue[rune]()
	q.Enqueue('a', 5)
	q.Enqueue('b', 3)
	q.Enqueue('c', 8)
	q.Enqueue('d', 3)
	q.Enqueue('e', 3)

	require.NotNil(t, q.root)
	assert.Equal(t, 5, q.root.priority)
	assert.Nil(t, q.root.parent)
	assert.Equal(t, 3, q.root.left.priority)
	assert.Equal(t, 8, q.root.right.priority)

	head := q.root.left
	assert.True(t, head.dup)
	assert.Equal(t, 'b', head.value)
	assert.Equal(t, 'd', head.link.value)
	assert.Same(t, head, head.link.parent)
	assert.Equal(t, 'e', head.link.link.value)
	assert.Same(t, head.link, head.link.link.parent)
	assert.Nil(t, head.link.link.link)
}

func TestBstPriorityQueue_Dequeue(t *testing.T) {
	newQueue := func() *BstPriorityQueue[int] {
		q := NewBstPriorityQueue[int]()
		q.Enqueue(3, 1)
		q.Enqueue(1, 2)
		q.Enqueue(4, 2)
		q.Enqueue(1, 4)
		q.Enqueue(5, 5)
		q.Enqueue(9, 7)
		return q
	}

	t.Run("minimum without duplicates", func(t *testing.T) {
		q := newQueue()
		assert.Equal(t, 3, q.Dequeue())
		assert.Equal(t, 5, q.Size())
		checkInvariants(t, q)
	})

	t.Run("minimum with duplicates", func(t *testing.T) {
		q := newQueue()
		q.Dequeue()
		assert.Equal(t, 1, q.Dequeue())
		assert.Equal(t, 4, q.Size())
		checkInvariants(t, q)
	})

	t.Run("drain", func(t *testing.T) {
		q := newQueue()
		var got []int
		for q.Len() > 0 {
			got = append(got, q.Dequeue())
			checkInvariants(t, q)
		}
		assert.Equal(t, []int{3, 1, 4, 1, 5, 9}, got)
	})

	t.Run("empty", func(t *testing.T) {
		q := NewBstPriorityQueue[int]()
		assert.Equal(t, 0, q.Dequeue())
		assert.Equal(t, 0, q.Size())

		_, err := q.DequeueWithPriority()
		assert.ErrorIs(t, err, prioritree.ErrEmptyQueue)
	})
}

func TestBstPriorityQueue_DequeuePromotesChain(t *testing.T) {
	q := NewBstPriorityQueue[string]()
	q.Enqueue("a", 5)
	q.Enqueue("b", 3)
	q.Enqueue("c", 4)
	q.Enqueue("d", 3)
	q.Enqueue("e", 3)
	checkInvariants(t, q)

	entry, err := q.DequeueWithPriority()
	require.NoError(t, err)
	assert.Equal(t, prioritree.Entry[string]{Value: "b", Priority: 3}, entry)
	checkInvariants(t, q)

	// d took over b's place, keeping b's right subtree
	promoted := q.root.left
	assert.Equal(t, "d", promoted.value)
	assert.True(t, promoted.dup)
	assert.Same(t, q.root, promoted.parent)
	assert.Same(t, promoted, promoted.right.parent)

	assert.Equal(t, "d", q.Dequeue())
	checkInvariants(t, q)
	assert.False(t, q.root.left.dup)

	assert.Equal(t, "e", q.Dequeue())
	checkInvariants(t, q)
	assert.Equal(t, 4, q.root.left.priority)

	assert.Equal(t, "c", q.Dequeue())
	checkInvariants(t, q)
	assert.Equal(t, "a", q.Dequeue())
	checkInvariants(t, q)

	assert.Nil(t, q.root)
	assert.Equal(t, 0, q.Len())
}

func TestBstPriorityQueue_DequeueRootWithChain(t *testing.T) {
	q := NewBstPriorityQueue[string]()
	q.Enqueue("hello", 1)
	q.Enqueue("world", 1)
	q.Enqueue("!", 1)
	q.Enqueue("right", 2)

	for _, want := range []string{"hello", "world", "!", "right"} {
		assert.Equal(t, want, q.Peek())
		assert.Equal(t, want, q.Dequeue())
		checkInvariants(t, q)
		if q.root != nil {
			assert.Nil(t, q.root.parent)
		}
	}
	assert.Equal(t, 0, q.Size())
}

func TestBstPriorityQueue_Peek(t *testing.T) {
	q := NewBstPriorityQueue[string]()
	assert.Equal(t, "", q.Peek())
	_, err := q.PeekWithPriority()
	assert.ErrorIs(t, err, prioritree.ErrEmptyQueue)

	q.Enqueue("hello", 2)
	q.Enqueue("world", 1)
	q.Enqueue("!", 3)

	entry, err := q.PeekWithPriority()
	require.NoError(t, err)
	assert.Equal(t, prioritree.Entry[string]{Value: "world", Priority: 1}, entry)
	assert.Equal(t, 3, q.Size())

	for _, want := range []string{"world", "hello", "!"} {
		assert.Equal(t, want, q.Peek())
		assert.Equal(t, want, q.Dequeue())
	}
	assert.Equal(t, 0, q.Size())
}

func TestBstPriorityQueue_Clear(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		q := NewBstPriorityQueue[int]()
		q.Clear()
		assert.Equal(t, 0, q.Size())
	})

	t.Run("non-empty", func(t *testing.T) {
		q := NewBstPriorityQueue[int]()
		for i, p := range []int{4, 2, 6, 2, 2, 1, 3, 6} {
			q.Enqueue(i, p)
		}
		root := q.root
		q.Clear()

		assert.Equal(t, 0, q.Size())
		assert.Nil(t, q.root)
		assert.Nil(t, root.left)
		assert.Nil(t, root.right)
		assert.Equal(t, "", q.String())
		assert.Equal(t, 0, q.Peek())
		assert.Equal(t, 0, q.Dequeue())

		q.Begin()
		_, _, ok := q.Next()
		assert.False(t, ok)

		q.Enqueue(7, 7)
		assert.Equal(t, 1, q.Size())
		checkInvariants(t, q)
	})
}

func TestBstPriorityQueue_CopyFrom(t *testing.T) {
	src := NewBstPriorityQueue[int]()
	for i, p := range []int{5, 3, 8, 3, 1, 9, 8, 4, 3} {
		src.Enqueue(i, p)
	}

	dst := NewBstPriorityQueue[int]()
	dst.Enqueue(100, 100)
	dst.CopyFrom(src)
	checkInvariants(t, dst)

	assert.Equal(t, src.Size(), dst.Size())
	assert.Equal(t, src.String(), dst.String())
	assert.True(t, Equal(src, dst))

	// the copy is independent
	dst.Dequeue()
	assert.Equal(t, 9, src.Size())
	assert.Equal(t, 8, dst.Size())
	assert.False(t, Equal(src, dst))

	src.CopyFrom(src)
	assert.Equal(t, 9, src.Size())
	checkInvariants(t, src)

	empty := NewBstPriorityQueue[int]()
	src.CopyFrom(empty)
	assert.Equal(t, 0, src.Size())
	assert.True(t, Equal(src, empty))
}

func TestBstPriorityQueue_Clone(t *testing.T) {
	q := NewBstPriorityQueue[string]()
	q.Enqueue("b", 2)
	q.Enqueue("a", 1)
	q.Enqueue("c", 2)

	c := q.Clone()
	checkInvariants(t, c)
	assert.True(t, Equal(q, c))
	assert.NotSame(t, q.root, c.root)
}

func TestBstPriorityQueue_ZeroValue(t *testing.T) {
	var q BstPriorityQueue[int]
	assert.Equal(t, 0, q.Len())
	q.Begin()
	_, _, ok := q.Next()
	assert.False(t, ok)

	q.Enqueue(1, 1)
	assert.Equal(t, 1, q.Peek())
}

func TestBstPriorityQueue_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 20; round++ {
		t.Run(fmt.Sprintf("round-%d", round), func(t *testing.T) {
			q := NewBstPriorityQueue[int]()
			ref := NewHeapPriorityQueue[int](0)
			for i := 0; i < 200; i++ {
				if rng.Intn(3) == 0 {
					want, wantErr := ref.DequeueWithPriority()
					got, err := q.DequeueWithPriority()
					require.Equal(t, wantErr, err)
					require.Equal(t, want, got)
				} else {
					p := rng.Intn(20)
					q.Enqueue(i, p)
					ref.Enqueue(i, p)
				}
				require.Equal(t, ref.Len(), q.Len())
				checkInvariants(t, q)
			}
		})
	}
}
