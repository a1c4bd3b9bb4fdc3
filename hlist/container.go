package hlist

import (
	"iter"

	"go.llib.dev/frameless/pkg/slicekit"
)

// Container is the backing doubly linked list of a single list slot.
// The zero value is ready to use.
type Container[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

type node[T any] struct {
	data T
	prev *node[T]
	next *node[T]
}

// Len returns the number of stored elements.
func (c *Container[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.length
}

// IsEmpty tells whether the list holds no elements.
func (c *Container[T]) IsEmpty() bool { return c.Len() == 0 }

// Lookup returns the element at the given position.
func (c *Container[T]) Lookup(index int) (T, bool) {
	n := c.at(index)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.data, true
}

// Set replaces the element at the given position and reports whether the
// position existed.
func (c *Container[T]) Set(index int, v T) bool {
	n := c.at(index)
	if n == nil {
		return false
	}
	n.data = v
	return true
}

// First returns the first element of the list.
func (c *Container[T]) First() (T, bool) {
	if c == nil || c.head == nil {
		var zero T
		return zero, false
	}
	return c.head.data, true
}

// Last returns the last element of the list.
func (c *Container[T]) Last() (T, bool) {
	if c == nil || c.tail == nil {
		var zero T
		return zero, false
	}
	return c.tail.data, true
}

// Append adds the values to the end of the list.
func (c *Container[T]) Append(vs ...T) {
	for _, v := range vs {
		c.append(v)
	}
}

func (c *Container[T]) append(v T) {
	n := &node[T]{data: v, prev: c.tail}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.length++
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (c *Container[T]) Prepend(vs ...T) {
	for _, v := range slicekit.IterReverse(vs) {
		c.prepend(v)
	}
}

func (c *Container[T]) prepend(v T) {
	n := &node[T]{data: v, next: c.head}
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.length++
}

// Pop removes and returns the last element. It reports false when the list
// is empty.
func (c *Container[T]) Pop() (T, bool) {
	if c.tail == nil {
		var zero T
		return zero, false
	}
	n := c.tail
	c.unlink(n)
	return n.data, true
}

// Shift removes and returns the first element. It reports false when the
// list is empty.
func (c *Container[T]) Shift() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	n := c.head
	c.unlink(n)
	return n.data, true
}

// Insert places the values before the given position.
// The position may equal Len, which appends.
func (c *Container[T]) Insert(index int, vs ...T) bool {
	if index < 0 || c.length < index {
		return false
	}
	if index == c.length {
		c.Append(vs...)
		return true
	}
	next := c.at(index)
	for _, v := range vs {
		n := &node[T]{data: v, prev: next.prev, next: next}
		if next.prev == nil {
			c.head = n
		} else {
			next.prev.next = n
		}
		next.prev = n
		c.length++
	}
	return true
}

// Delete removes the element at the given position.
func (c *Container[T]) Delete(index int) bool {
	n := c.at(index)
	if n == nil {
		return false
	}
	c.unlink(n)
	return true
}

// RemoveIf removes every element satisfying the predicate and returns the
// number of removed elements.
func (c *Container[T]) RemoveIf(pred func(v T) bool) int {
	var removed int
	for cur := c.head; cur != nil; {
		next := cur.next
		if pred(cur.data) {
			c.unlink(cur)
			removed++
		}
		cur = next
	}
	return removed
}

// UniqueFunc removes every element that equals its predecessor and returns
// the number of removed elements. Only consecutive duplicates collapse, so
// the whole list ends up duplicate free when it is sorted.
func (c *Container[T]) UniqueFunc(eq func(a, b T) bool) int {
	var removed int
	for cur := c.head; cur != nil && cur.next != nil; {
		if eq(cur.data, cur.next.data) {
			c.unlink(cur.next)
			removed++
		} else {
			cur = cur.next
		}
	}
	return removed
}

// MergeFunc transfers every element of the other list into this one,
// interleaving by the given ordering. Both lists are expected to be sorted
// by it; between equals the receiver's elements come first. The other list
// is empty afterwards.
func (c *Container[T]) MergeFunc(oth *Container[T], less func(a, b T) bool) {
	if oth == nil || oth.head == nil || c == oth {
		return
	}
	c.length += oth.length
	c.head = merge(c.head, oth.head, less)
	oth.head, oth.tail, oth.length = nil, nil, 0
	c.relink()
}

// SortFunc sorts the list by the given ordering. The sort is stable and
// relinks nodes instead of moving element values.
func (c *Container[T]) SortFunc(less func(a, b T) bool) {
	if c.length < 2 {
		return
	}
	c.head = mergeSort(c.head, less)
	c.relink()
}

// Splice transfers every element of the other list before the given
// position. The position may equal Len, which appends. The other list is
// empty afterwards. Splicing a list into itself reports false.
func (c *Container[T]) Splice(index int, oth *Container[T]) bool {
	if c == oth || index < 0 || c.length < index {
		return false
	}
	if oth == nil || oth.head == nil {
		return true
	}
	next := c.at(index)
	prev := c.tail
	if next != nil {
		prev = next.prev
	}
	oth.head.prev = prev
	if prev == nil {
		c.head = oth.head
	} else {
		prev.next = oth.head
	}
	oth.tail.next = next
	if next != nil {
		next.prev = oth.tail
	} else {
		c.tail = oth.tail
	}
	c.length += oth.length
	oth.head, oth.tail, oth.length = nil, nil, 0
	return true
}

// Reverse reverses the order of the elements.
func (c *Container[T]) Reverse() {
	cur := c.head
	c.head, c.tail = c.tail, c.head
	for cur != nil {
		next := cur.next
		cur.next, cur.prev = cur.prev, next
		cur = next
	}
}

// Clear removes every element.
func (c *Container[T]) Clear() {
	c.head, c.tail, c.length = nil, nil, 0
}

// Assign replaces the whole content of the list with the given values.
func (c *Container[T]) Assign(vs ...T) {
	c.Clear()
	c.Append(vs...)
}

// ToSlice returns the list's content as a slice.
func (c *Container[T]) ToSlice() []T {
	var vs []T
	for v := range c.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Iter yields the elements in list order.
func (c *Container[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for n := c.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// IterReverse yields the elements in reverse list order.
func (c *Container[T]) IterReverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for n := c.tail; n != nil; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Swap exchanges the content of the two lists.
func (c *Container[T]) Swap(oth *Container[T]) {
	*c, *oth = *oth, *c
}

func (c *Container[T]) at(index int) *node[T] {
	if c == nil || index < 0 || c.length <= index {
		return nil
	}
	n := c.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

func (c *Container[T]) unlink(n *node[T]) {
	if n.prev == nil {
		c.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		c.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	c.length--
}

// relink rebuilds the prev pointers and the tail after node surgery that
// only maintained the next chain.
func (c *Container[T]) relink() {
	var prev *node[T]
	for n := c.head; n != nil; n = n.next {
		n.prev = prev
		prev = n
	}
	c.tail = prev
}

func mergeSort[T any](head *node[T], less func(a, b T) bool) *node[T] {
	if head == nil || head.next == nil {
		return head
	}
	mid := split(head)
	return merge(mergeSort(head, less), mergeSort(mid, less), less)
}

// split cuts the chain in half and returns the head of the second half.
func split[T any](head *node[T]) *node[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil
	return mid
}

func merge[T any](a, b *node[T], less func(x, y T) bool) *node[T] {
	var head, tail *node[T]
	link := func(n *node[T]) {
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	for a != nil && b != nil {
		if less(b.data, a.data) {
			next := b.next
			link(b)
			b = next
		} else {
			next := a.next
			link(a)
			a = next
		}
	}
	rest := a
	if rest == nil {
		rest = b
	}
	if tail == nil {
		return rest
	}
	tail.next = rest
	return head
}
