package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDeque_BackAndForth(t *testing.T) {
	d := Deque[int]{}
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Front())
	assert.Nil(t, d.Back())

	for i := 0; i < 10; i++ {
		d.PushBack(i)
	}
	assert.Equal(t, 10, d.Len())
	assert.Equal(t, 0, *d.Front())
	assert.Equal(t, 9, *d.Back())

	assert.Equal(t, 9, d.PopBack())
	assert.Equal(t, 0, d.PopFront())
	assert.Equal(t, 8, d.Len())

	d.PushFront(-1)
	assert.Equal(t, -1, *d.Front())
	assert.Equal(t, -1, d.PopFront())
}

func TestDeque_WrapAround(t *testing.T) {
	d := Deque[int]{}
	// rotate enough to force the head past the buffer's end
	for i := 0; i < 100; i++ {
		d.PushBack(i)
		if i%3 == 0 {
			d.PopFront()
		}
	}
	prev := *d.Front()
	for d.Len() > 0 {
		next := d.PopFront()
		assert.LessOrEqual(t, prev, next)
		prev = next
	}
	assert.Panics(t, func() { d.PopFront() })
	assert.Panics(t, func() { d.PopBack() })
}

func TestDeque_PointerWrites(t *testing.T) {
	d := Deque[int]{}
	d.PushBack(1)
	d.PushBack(2)
	*d.Back() = 5
	assert.Equal(t, 5, d.PopBack())
	assert.Equal(t, 1, d.PopFront())
}
