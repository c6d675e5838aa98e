package utils

// Deque is a double-ended queue of owned values backed by a ring buffer.
// The zero value is an empty deque ready for use.
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

func (d *Deque[T]) Len() int {
	return d.size
}

// PushBack appends x at the newest end.
// Amortized complexity is O(1).
func (d *Deque[T]) PushBack(x T) {
	d.grow()
	d.buf[(d.head+d.size)%len(d.buf)] = x
	d.size++
}

// PushFront prepends x at the oldest end.
// Amortized complexity is O(1).
func (d *Deque[T]) PushFront(x T) {
	d.grow()
	d.head = (d.head + len(d.buf) - 1) % len(d.buf)
	d.buf[d.head] = x
	d.size++
}

// PopBack removes and returns the newest element.
// Panics when the deque is empty.
func (d *Deque[T]) PopBack() T {
	if d.size == 0 {
		panic("pop from an empty deque")
	}
	i := (d.head + d.size - 1) % len(d.buf)
	x := d.buf[i]
	var none T
	d.buf[i] = none // drop the reference
	d.size--
	return x
}

// PopFront removes and returns the oldest element.
// Panics when the deque is empty.
func (d *Deque[T]) PopFront() T {
	if d.size == 0 {
		panic("pop from an empty deque")
	}
	x := d.buf[d.head]
	var none T
	d.buf[d.head] = none
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return x
}

// Back returns a pointer to the newest element, nil when empty. The pointer
// is only valid until the next mutation.
func (d *Deque[T]) Back() *T {
	if d.size == 0 {
		return nil
	}
	return &d.buf[(d.head+d.size-1)%len(d.buf)]
}

// Front returns a pointer to the oldest element, nil when empty. The pointer
// is only valid until the next mutation.
func (d *Deque[T]) Front() *T {
	if d.size == 0 {
		return nil
	}
	return &d.buf[d.head]
}

func (d *Deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}
	grown := len(d.buf) * 2
	if grown == 0 {
		grown = 4
	}
	buf := make([]T, grown)
	for i := 0; i < d.size; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}
