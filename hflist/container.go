package hflist

import (
	"iter"

	"go.llib.dev/frameless/pkg/slicekit"
)

// Container is the backing singly linked list of a single forward list slot.
// It tracks no length on purpose, matching the minimal footprint of a
// forward list. The zero value is ready to use.
type Container[T any] struct {
	head *node[T]
}

type node[T any] struct {
	data T
	next *node[T]
}

// IsEmpty tells whether the list holds no elements.
func (c *Container[T]) IsEmpty() bool {
	return c == nil || c.head == nil
}

// First returns the first element of the list.
func (c *Container[T]) First() (T, bool) {
	if c == nil || c.head == nil {
		var zero T
		return zero, false
	}
	return c.head.data, true
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (c *Container[T]) Prepend(vs ...T) {
	for _, v := range slicekit.IterReverse(vs) {
		c.head = &node[T]{data: v, next: c.head}
	}
}

// Shift removes and returns the first element. It reports false when the
// list is empty.
func (c *Container[T]) Shift() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	n := c.head
	c.head = n.next
	n.next = nil
	return n.data, true
}

// InsertAfter places the values after the element at the given position.
// The position must address an existing element; use Prepend to add at the
// front.
func (c *Container[T]) InsertAfter(index int, vs ...T) bool {
	pos := c.at(index)
	if pos == nil {
		return false
	}
	for _, v := range vs {
		pos.next = &node[T]{data: v, next: pos.next}
		pos = pos.next
	}
	return true
}

// DeleteAfter removes the element following the given position. It reports
// false when no such element exists; use Shift to remove the front.
func (c *Container[T]) DeleteAfter(index int) bool {
	pos := c.at(index)
	if pos == nil || pos.next == nil {
		return false
	}
	pos.next = pos.next.next
	return true
}

// RemoveIf removes every element satisfying the predicate and returns the
// number of removed elements.
func (c *Container[T]) RemoveIf(pred func(v T) bool) int {
	var removed int
	var prev *node[T]
	for cur := c.head; cur != nil; {
		next := cur.next
		if pred(cur.data) {
			if prev == nil {
				c.head = next
			} else {
				prev.next = next
			}
			removed++
		} else {
			prev = cur
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
			cur.next = cur.next.next
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
	c.head = merge(c.head, oth.head, less)
	oth.head = nil
}

// SortFunc sorts the list by the given ordering. The sort is stable and
// relinks nodes instead of moving element values.
func (c *Container[T]) SortFunc(less func(a, b T) bool) {
	if c.head == nil || c.head.next == nil {
		return
	}
	c.head = mergeSort(c.head, less)
}

// SpliceAfter transfers every element of the other list after the element
// at the given position. The other list is empty afterwards. The position
// must address an existing element; splicing a list into itself reports
// false.
func (c *Container[T]) SpliceAfter(index int, oth *Container[T]) bool {
	if c == oth {
		return false
	}
	pos := c.at(index)
	if pos == nil {
		return false
	}
	if oth == nil || oth.head == nil {
		return true
	}
	last := oth.head
	for last.next != nil {
		last = last.next
	}
	last.next = pos.next
	pos.next = oth.head
	oth.head = nil
	return true
}

// Reverse reverses the order of the elements.
func (c *Container[T]) Reverse() {
	var prev *node[T]
	for cur := c.head; cur != nil; {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	c.head = prev
}

// Clear removes every element.
func (c *Container[T]) Clear() {
	c.head = nil
}

// Assign replaces the whole content of the list with the given values.
func (c *Container[T]) Assign(vs ...T) {
	c.head = nil
	c.Prepend(vs...)
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

// Swap exchanges the content of the two lists.
func (c *Container[T]) Swap(oth *Container[T]) {
	*c, *oth = *oth, *c
}

func (c *Container[T]) at(index int) *node[T] {
	if c == nil || index < 0 {
		return nil
	}
	n := c.head
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	return n
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
