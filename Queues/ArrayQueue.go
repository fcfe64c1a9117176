package Queues

type circArrQ[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue with initCap slots preallocated. initCap can be 0.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize copies the content to a fresh array of newLen starting at 0. newLen>=u.sz.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := uint(copy(nc, u.content[u.head:])); n < u.sz {
		copy(nc[n:], u.content[:u.sz-n])
	}
	u.content, u.head = nc, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}
