// Package hstack provides the heterogeneous stack: an aggregate declaring
// an ordered list of element types, each with its own last-in-first-out
// backing storage, where a slot is addressed by its element type and
// declaration occurrence.
package hstack

import (
	"reflect"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"github.com/venkatarajasekhar/HCL-2/internal/typereg"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Type is a single entry of a Stack's declared type list.
type Type struct {
	rtype reflect.Type
	alloc func() any
	copy  func(dst, src any)
}

// Of declares a stack slot for elements of type T.
func Of[T any]() Type {
	return Type{
		rtype: reflectkit.TypeOf[T](),
		alloc: func() any { return &Container[T]{} },
		copy: func(dst, src any) {
			d, s := dst.(*Container[T]), src.(*Container[T])
			clear(*d)
			*d = append((*d)[:0], *s...)
		},
	}
}

// Stack is a heterogeneous stack.
//
// The same type may be declared any number of times in its type list; every
// repetition owns a separate backing storage, and type indexed operations
// single one out with the trailing occurrence argument, which defaults to
// the first repetition.
type Stack struct {
	types []Type
	reg   typereg.Registry
}

// New builds a heterogeneous stack from the declared type list.
func New(types ...Type) *Stack {
	st := &Stack{types: types}
	slots := make([]typereg.Slot, len(types))
	for i, tok := range types {
		slots[i] = typereg.Slot{Type: tok.rtype, Cell: tok.alloc()}
	}
	st.reg = typereg.New(slots...)
	return st
}

// Len returns the number of declared slots.
func (st *Stack) Len() int { return st.reg.Len() }

// TypeAt returns the declared element type of the slot at the given
// declaration position.
func (st *Stack) TypeAt(index int) (reflect.Type, error) { return st.reg.TypeAt(index) }

// Types returns the declared type list in declaration order.
func (st *Stack) Types() []reflect.Type { return st.reg.Types() }

// Swap exchanges the backing storages of two stacks that declare the
// identical type list.
func (st *Stack) Swap(oth *Stack) error { return st.reg.SwapCells(&oth.reg) }

// CopyFrom replaces the content of every slot with a copy of the
// corresponding slot of the source stack. Both stacks must declare the
// identical type list.
func (st *Stack) CopyFrom(oth *Stack) error {
	if !st.reg.SameTypes(&oth.reg) {
		return hetero.ErrNotDeclared.F("the source aggregate declares a different type list")
	}
	copyCells(&st.reg, &oth.reg, st.types)
	return nil
}

// Clone returns a stack with the same type list and a copy of every slot's
// content.
func (st *Stack) Clone() *Stack {
	c := New(st.types...)
	copyCells(&c.reg, &st.reg, st.types)
	return c
}

func copyCells(dst, src *typereg.Registry, types []Type) {
	for i, tok := range types {
		d, _ := dst.CellAt(i)
		s, _ := src.CellAt(i)
		tok.copy(d, s)
	}
}

// Get resolves the backing storage of the occurrence-th U typed slot.
// The returned container is live: mutations through it are visible in the
// stack.
func Get[U any](st *Stack, occurrence ...int) (*Container[U], error) {
	cell, err := st.reg.Find(reflectkit.TypeOf[U](), zerokit.Coalesce(occurrence...))
	if err != nil {
		return nil, err
	}
	return cell.(*Container[U]), nil
}

// Contains tells whether the stack declares at least one U typed slot.
func Contains[U any](st *Stack) bool {
	return st.reg.Contains(reflectkit.TypeOf[U]())
}

// Multiplicity counts how many of the stack's slots are declared with U.
func Multiplicity[U any](st *Stack) int {
	return st.reg.Multiplicity(reflectkit.TypeOf[U]())
}
