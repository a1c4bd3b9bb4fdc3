// Package hvec provides the heterogeneous vector: an aggregate declaring an
// ordered list of element types, each with its own growable backing sequence,
// where a slot is addressed by its element type and declaration occurrence.
package hvec

import (
	"reflect"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"github.com/venkatarajasekhar/HCL-2/internal/typereg"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Type is a single entry of a Vec's declared type list.
type Type struct {
	rtype reflect.Type
	alloc func() any
	copy  func(dst, src any)
}

// Of declares a vector slot for elements of type T.
func Of[T any]() Type {
	return Type{
		rtype: reflectkit.TypeOf[T](),
		alloc: func() any { return &Container[T]{} },
		copy: func(dst, src any) {
			d, s := dst.(*Container[T]), src.(*Container[T])
			d.Assign(s.vs...)
		},
	}
}

// Vec is a heterogeneous vector.
//
// The same type may be declared any number of times in its type list; every
// repetition owns a separate backing sequence, and type indexed operations
// single one out with the trailing occurrence argument, which defaults to
// the first repetition.
type Vec struct {
	types []Type
	reg   typereg.Registry
}

// New builds a heterogeneous vector from the declared type list.
func New(types ...Type) *Vec {
	v := &Vec{types: types}
	slots := make([]typereg.Slot, len(types))
	for i, tok := range types {
		slots[i] = typereg.Slot{Type: tok.rtype, Cell: tok.alloc()}
	}
	v.reg = typereg.New(slots...)
	return v
}

// Len returns the number of declared slots.
func (v *Vec) Len() int { return v.reg.Len() }

// TypeAt returns the declared element type of the slot at the given
// declaration position.
func (v *Vec) TypeAt(index int) (reflect.Type, error) { return v.reg.TypeAt(index) }

// Types returns the declared type list in declaration order.
func (v *Vec) Types() []reflect.Type { return v.reg.Types() }

// Swap exchanges the backing sequences of two vectors that declare the
// identical type list.
func (v *Vec) Swap(oth *Vec) error { return v.reg.SwapCells(&oth.reg) }

// CopyFrom replaces the content of every slot with a copy of the
// corresponding slot of the source vector. Both vectors must declare the
// identical type list.
func (v *Vec) CopyFrom(oth *Vec) error {
	if !v.reg.SameTypes(&oth.reg) {
		return hetero.ErrNotDeclared.F("the source aggregate declares a different type list")
	}
	copyCells(&v.reg, &oth.reg, v.types)
	return nil
}

// Clone returns a vector with the same type list and a copy of every slot's
// content.
func (v *Vec) Clone() *Vec {
	c := New(v.types...)
	copyCells(&c.reg, &v.reg, v.types)
	return c
}

func copyCells(dst, src *typereg.Registry, types []Type) {
	for i, tok := range types {
		d, _ := dst.CellAt(i)
		s, _ := src.CellAt(i)
		tok.copy(d, s)
	}
}

// Get resolves the backing sequence of the occurrence-th U typed slot.
// The returned container is live: mutations through it are visible in the
// vector.
func Get[U any](v *Vec, occurrence ...int) (*Container[U], error) {
	cell, err := v.reg.Find(reflectkit.TypeOf[U](), zerokit.Coalesce(occurrence...))
	if err != nil {
		return nil, err
	}
	return cell.(*Container[U]), nil
}

// Contains tells whether the vector declares at least one U typed slot.
func Contains[U any](v *Vec) bool {
	return v.reg.Contains(reflectkit.TypeOf[U]())
}

// Multiplicity counts how many of the vector's slots are declared with U.
func Multiplicity[U any](v *Vec) int {
	return v.reg.Multiplicity(reflectkit.TypeOf[U]())
}
