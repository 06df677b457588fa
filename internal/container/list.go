package container

// listNode is an internal doubly linked list element.
type listNode[T any] struct {
	value      T
	prev, next *listNode[T]
}

// List is a doubly linked list with sentinel head/tail nodes, usable as
// either a queue (push_back/pop_front/peek_front) or a stack
// (push_front/pop_front/peek_front). The shunting-yard operator stack and
// the generator's discovery queues are both built on this type.
type List[T any] struct {
	head, tail *listNode[T] // sentinels; never hold real values
	size       int
}

// NewList creates an empty list with its sentinel nodes wired together.
func NewList[T any]() *List[T] {
	l := &List[T]{head: &listNode[T]{}, tail: &listNode[T]{}}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Size returns the number of elements.
func (l *List[T]) Size() int { return l.size }

func (l *List[T]) insertBetween(v T, before, after *listNode[T]) *listNode[T] {
	n := &listNode[T]{value: v, prev: before, next: after}
	before.next = n
	after.prev = n
	l.size++
	return n
}

// PushBack appends v as the new last element (queue enqueue).
func (l *List[T]) PushBack(v T) {
	l.insertBetween(v, l.tail.prev, l.tail)
}

// PushFront prepends v as the new first element (stack push).
func (l *List[T]) PushFront(v T) {
	l.insertBetween(v, l.head, l.head.next)
}

// PopFront removes and returns the first element. ok is false on an empty
// list. Used both to dequeue (queue) and to pop (stack), since both roles
// remove from the front here.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.Empty() {
		return v, false
	}
	n := l.head.next
	l.head.next = n.next
	n.next.prev = l.head
	l.size--
	return n.value, true
}

// PeekFront returns the first element without removing it.
func (l *List[T]) PeekFront() (v T, ok bool) {
	if l.Empty() {
		return v, false
	}
	return l.head.next.value, true
}

// InsertBefore inserts v immediately before the element equal to mark under
// eq, returning true if mark was found.
func (l *List[T]) InsertBefore(v T, mark T, eq func(T, T) bool) bool {
	for n := l.head.next; n != l.tail; n = n.next {
		if eq(n.value, mark) {
			l.insertBetween(v, n.prev, n)
			return true
		}
	}
	return false
}

// Remove deletes the first element equal to target under eq, returning
// true if one was found and removed.
func (l *List[T]) Remove(target T, eq func(T, T) bool) bool {
	for n := l.head.next; n != l.tail; n = n.next {
		if eq(n.value, target) {
			n.prev.next = n.next
			n.next.prev = n.prev
			l.size--
			return true
		}
	}
	return false
}

// ToSlice returns every element from front to back.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != l.tail; n = n.next {
		out = append(out, n.value)
	}
	return out
}
