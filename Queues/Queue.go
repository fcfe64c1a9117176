package Queues

// Queue is a FIFO container. Pop on an empty Queue returns the zero value and
// an *EmptyQueueError.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	//Size is the number of queued items.
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
