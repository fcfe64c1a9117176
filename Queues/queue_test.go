package Queues

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewPCG(0, 0))

func TestArrayQueue_Order(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		var want []int
		for i := 0; i < 2000; i++ {
			if rg.IntN(3) > 0 {
				q.Push(i)
				want = append(want, i)
			} else if len(want) > 0 {
				v, err := q.Pop()
				require.NoError(t, err)
				if v != want[0] {
					t.Fatalf("cap %d: popped %d, want %d", initCap, v, want[0])
				}
				want = want[1:]
			}
			if q.Size() != uint(len(want)) {
				t.Fatalf("cap %d: size %d, want %d", initCap, q.Size(), len(want))
			}
		}
		for _, w := range want {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, w, v)
		}
		require.True(t, q.Empty())
	}
}

// Growing while the ring wraps around keeps the order.
func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := 0; i < 3; i++ {
		q.Push(i)
	}
	for i := 0; i < 2; i++ {
		v, _ := q.Pop()
		require.Equal(t, i, v)
	}
	for i := 3; i < 10; i++ {
		q.Push(i)
	}
	for i := 2; i < 10; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Zero(t, q.Size())
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](0)
	_, err := q.Pop()
	var e *EmptyQueueError
	require.ErrorAs(t, err, &e)

	q.Push("a")
	q.Push("b")
	v, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, "a", v)
	v, _ = q.Pop()
	require.Equal(t, "b", v)
	require.True(t, q.Empty())
	_, err = q.Pop()
	require.Error(t, err)
}
