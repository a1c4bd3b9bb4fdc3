// Package typereg implements the declaration ordered slot registry that backs
// every heterogeneous aggregate of this module.
package typereg

import (
	"iter"
	"reflect"

	hetero "github.com/venkatarajasekhar/HCL-2"
)

// Slot pairs a declared element type with the backing container cell holding
// the values of that type.
type Slot struct {
	Type reflect.Type
	Cell any
}

// Registry holds an aggregate's slots in declaration order.
// A type may be declared any number of times; a lookup addresses a given
// repetition through its occurrence, the zero based rank among the slots
// sharing that type.
type Registry struct {
	slots []Slot
}

func New(slots ...Slot) Registry {
	return Registry{slots: slots}
}

// Len returns the number of declared slots.
func (r *Registry) Len() int { return len(r.slots) }

// Find walks the slots in declaration order, counting only the slots declared
// with the requested type, and returns the cell of the occurrence-th such
// slot. The count restarts on every call, so a failed or interrupted lookup
// cannot taint a later one.
func (r *Registry) Find(typ reflect.Type, occurrence int) (any, error) {
	var seen int
	for _, slot := range r.slots {
		if slot.Type != typ {
			continue
		}
		if seen == occurrence {
			return slot.Cell, nil
		}
		seen++
	}
	return nil, hetero.ErrNotDeclared.F("no %s slot with occurrence %d", typ, occurrence)
}

// Contains tells whether at least one slot is declared with the given type.
func (r *Registry) Contains(typ reflect.Type) bool {
	for _, slot := range r.slots {
		if slot.Type == typ {
			return true
		}
	}
	return false
}

// Multiplicity counts how many slots are declared with the given type.
func (r *Registry) Multiplicity(typ reflect.Type) int {
	var n int
	for _, slot := range r.slots {
		if slot.Type == typ {
			n++
		}
	}
	return n
}

// TypeAt returns the declared type of the slot at the given declaration
// position.
func (r *Registry) TypeAt(index int) (reflect.Type, error) {
	if index < 0 || r.Len() <= index {
		return nil, hetero.ErrOutOfRange.F("no slot at position %d", index)
	}
	return r.slots[index].Type, nil
}

// Types returns the declared type list in declaration order.
func (r *Registry) Types() []reflect.Type {
	ts := make([]reflect.Type, 0, len(r.slots))
	for _, slot := range r.slots {
		ts = append(ts, slot.Type)
	}
	return ts
}

// CellAt returns the backing cell at the given declaration position.
func (r *Registry) CellAt(index int) (any, bool) {
	if index < 0 || r.Len() <= index {
		return nil, false
	}
	return r.slots[index].Cell, true
}

// Cells yields the backing cell of every slot declared with the given type,
// in declaration order.
func (r *Registry) Cells(typ reflect.Type) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, slot := range r.slots {
			if slot.Type != typ {
				continue
			}
			if !yield(slot.Cell) {
				return
			}
		}
	}
}

// SameTypes tells whether both registries declare the identical type list.
func (r *Registry) SameTypes(oth *Registry) bool {
	if r.Len() != oth.Len() {
		return false
	}
	for i := range r.slots {
		if r.slots[i].Type != oth.slots[i].Type {
			return false
		}
	}
	return true
}

// SwapCells exchanges the backing cells of the two registries position by
// position. Both sides must declare the identical type list.
func (r *Registry) SwapCells(oth *Registry) error {
	if !r.SameTypes(oth) {
		return hetero.ErrNotDeclared.F("the other aggregate declares a different type list")
	}
	for i := range r.slots {
		r.slots[i].Cell, oth.slots[i].Cell = oth.slots[i].Cell, r.slots[i].Cell
	}
	return nil
}
