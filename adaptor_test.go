package hetero_test

import (
	"testing"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestAdaptor(t *testing.T) {
	s := testcase.NewSpec(t)

	seq := let.Var(s, func(t *testcase.T) *[]any {
		return &[]any{float32(3.1415), 3.141516, "a", 1986, "b", "c", 2004, 69.69, "d"}
	})
	adaptor := let.Var(s, func(t *testcase.T) *hetero.Adaptor {
		return hetero.Wrap(seq.Get(t))
	})

	s.Test("smoke", func(t *testcase.T) {
		a := adaptor.Get(t)

		assert.Equal(t, 9, a.Len())
		assert.Equal(t, 4, hetero.Size[string](a))
		assert.Equal(t, 2, hetero.Size[int](a))
		assert.Equal(t, 1, hetero.Size[float32](a))
		assert.Equal(t, 2, hetero.Size[float64](a))
		assert.Equal(t, 0, hetero.Size[bool](a))

		assert.Equal(t, []string{"a", "b", "c", "d"}, iterkit.Collect(hetero.Values[string](a)))
		assert.Equal(t, []int{1986, 2004}, iterkit.Collect(hetero.Values[int](a)))
		assert.Equal(t, []string{"d", "c", "b", "a"}, iterkit.Collect(hetero.Backward[string](a)))

		assert.False(t, hetero.IsEmpty[string](a))
		assert.True(t, hetero.IsEmpty[bool](a))
	})

	s.Describe("#Len", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) int {
			return adaptor.Get(t).Len()
		})

		s.Then("every element counts, whatever its type", func(t *testcase.T) {
			assert.Equal(t, len(*seq.Get(t)), act(t))
		})

		s.When("the backing sequence is mutated after wrapping", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				adaptor.Get(t) // wrap first
				vs := seq.Get(t)
				*vs = append(*vs, t.Random.Int())
			})

			s.Then("the change is visible through the adaptor", func(t *testcase.T) {
				assert.Equal(t, len(*seq.Get(t)), act(t))
			})
		})
	})

	s.Describe("#At", func(s *testcase.Spec) {
		var (
			index = let.VarOf(s, 0)
		)
		act := let.Act2(func(t *testcase.T) (any, error) {
			return adaptor.Get(t).At(index.Get(t))
		})

		s.Then("the erased element of the position is returned", func(t *testcase.T) {
			index.Set(t, 3)
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal[any](t, 1986, got)
		})

		s.When("the position is past the sequence", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return adaptor.Get(t).Len() + t.Random.IntN(3)
			})

			s.Then("an out of range error is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, hetero.ErrOutOfRange)
			})
		})

		s.When("the position is negative", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(-100, -1)
			})

			s.Then("an out of range error is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, hetero.ErrOutOfRange)
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		s.Then("the erased payload of the position is replaced", func(t *testcase.T) {
			a := adaptor.Get(t)

			assert.True(t, a.Set(0, "now a string"))

			assert.Equal(t, 5, hetero.Size[string](a))
			assert.Equal(t, 0, hetero.Size[float32](a))
		})

		s.Then("a missing position is reported without change", func(t *testcase.T) {
			a := adaptor.Get(t)

			assert.False(t, a.Set(a.Len(), "x"))
			assert.False(t, a.Set(-1, "x"))
			assert.Equal(t, 4, hetero.Size[string](a))
		})
	})

	s.Describe("Values", func(s *testcase.Spec) {
		s.Then("only the elements of the requested type are yielded, in sequence order", func(t *testcase.T) {
			a := adaptor.Get(t)

			assert.Equal(t, []float64{3.141516, 69.69}, iterkit.Collect(hetero.Values[float64](a)))
			assert.Equal(t, []float32{3.1415}, iterkit.Collect(hetero.Values[float32](a)))
		})

		s.Then("a type nobody stored yields nothing", func(t *testcase.T) {
			assert.Empty(t, iterkit.Collect(hetero.Values[bool](adaptor.Get(t))))
		})

		s.Then("iteration can be abandoned midway", func(t *testcase.T) {
			var got []string
			for v := range hetero.Values[string](adaptor.Get(t)) {
				got = append(got, v)
				if len(got) == 2 {
					break
				}
			}
			assert.Equal(t, []string{"a", "b"}, got)
		})

		s.When("the sequence contains an untyped nil", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				vs := seq.Get(t)
				*vs = append(*vs, nil)
			})

			s.Then("the nil element belongs to no type", func(t *testcase.T) {
				a := adaptor.Get(t)
				assert.Equal(t, 4, hetero.Size[string](a))
				assert.Equal(t, 10, a.Len())
			})
		})

		s.Test("an interface type argument matches nothing", func(t *testcase.T) {
			vs := []any{"text", 42}
			a := hetero.Wrap(&vs)

			// both elements satisfy any, yet filtering is by dynamic type
			assert.Empty(t, iterkit.Collect(hetero.Values[any](a)))
		})
	})

	s.Describe("First and Last", func(s *testcase.Spec) {
		s.Then("the boundary elements of the type are returned", func(t *testcase.T) {
			a := adaptor.Get(t)

			first, err := hetero.First[string](a)
			assert.NoError(t, err)
			assert.Equal(t, "a", first)

			last, err := hetero.Last[string](a)
			assert.NoError(t, err)
			assert.Equal(t, "d", last)

			onlyFirst, err := hetero.First[float32](a)
			assert.NoError(t, err)
			onlyLast, err := hetero.Last[float32](a)
			assert.NoError(t, err)
			assert.Equal(t, onlyFirst, onlyLast)
		})

		s.Then("a type nobody stored is out of range", func(t *testcase.T) {
			a := adaptor.Get(t)

			_, err := hetero.First[bool](a)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)

			_, err = hetero.Last[bool](a)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
		})
	})

	s.Describe("At by type", func(s *testcase.Spec) {
		s.Then("the filtered position indexes within the type's elements", func(t *testcase.T) {
			a := adaptor.Get(t)

			for i, exp := range []string{"a", "b", "c", "d"} {
				got, err := hetero.At[string](a, i)
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			}

			year, err := hetero.At[int](a, 1)
			assert.NoError(t, err)
			assert.Equal(t, 2004, year)
		})

		s.Then("a filtered position past the type's elements is out of range", func(t *testcase.T) {
			a := adaptor.Get(t)

			_, err := hetero.At[string](a, hetero.Size[string](a))
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)

			_, err = hetero.At[string](a, -1)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
		})
	})

	s.Describe("Position", func(s *testcase.Spec) {
		s.Then("filtered positions translate to absolute ones", func(t *testcase.T) {
			a := adaptor.Get(t)

			for i, exp := range []int{2, 4, 5, 8} {
				abs, err := hetero.Position[string](a, i)
				assert.NoError(t, err)
				assert.Equal(t, exp, abs)
			}

			abs, err := hetero.Position[int](a, 0)
			assert.NoError(t, err)
			assert.Equal(t, 3, abs)
		})

		s.Then("a missing filtered position is out of range", func(t *testcase.T) {
			_, err := hetero.Position[bool](adaptor.Get(t), 0)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
		})
	})

	s.Describe("Swap", func(s *testcase.Spec) {
		s.Then("same type swap exchanges elements within the type's slots", func(t *testcase.T) {
			a := adaptor.Get(t)

			assert.True(t, hetero.Swap[string, string](a, 0, 2))
			assert.Equal(t, []string{"c", "b", "a", "d"}, iterkit.Collect(hetero.Values[string](a)))

			// the rest of the sequence is untouched
			assert.Equal(t, []int{1986, 2004}, iterkit.Collect(hetero.Values[int](a)))
			assert.Equal(t, []float64{3.141516, 69.69}, iterkit.Collect(hetero.Values[float64](a)))
		})

		s.Then("swapping the same positions again restores the original order", func(t *testcase.T) {
			a := adaptor.Get(t)

			assert.True(t, hetero.Swap[string, string](a, 0, 2))
			assert.True(t, hetero.Swap[string, string](a, 0, 2))
			assert.Equal(t, []string{"a", "b", "c", "d"}, iterkit.Collect(hetero.Values[string](a)))
		})

		s.Then("cross type swap trades the payloads' places in the erased sequence", func(t *testcase.T) {
			a := adaptor.Get(t)

			assert.True(t, hetero.Swap[int, string](a, 0, 3))

			exp := []any{float32(3.1415), 3.141516, "a", "d", "b", "c", 2004, 69.69, 1986}
			assert.Equal(t, exp, *seq.Get(t))

			// both filtered orders changed
			assert.Equal(t, []string{"a", "d", "b", "c"}, iterkit.Collect(hetero.Values[string](a)))
			assert.Equal(t, []int{2004, 1986}, iterkit.Collect(hetero.Values[int](a)))
		})

		s.Then("an unresolved position on either side leaves the sequence alone", func(t *testcase.T) {
			a := adaptor.Get(t)
			before := append([]any(nil), *seq.Get(t)...)

			assert.False(t, hetero.Swap[string, string](a, 0, hetero.Size[string](a)))
			assert.False(t, hetero.Swap[bool, string](a, 0, 0))
			assert.False(t, hetero.Swap[string, int](a, -1, 0))
			assert.Equal(t, before, *seq.Get(t))
		})
	})

	s.Test("an empty wrap serves every query with empty results", func(t *testcase.T) {
		var vs []any
		a := hetero.Wrap(&vs)

		assert.Equal(t, 0, a.Len())
		assert.True(t, hetero.IsEmpty[int](a))
		assert.Empty(t, iterkit.Collect(hetero.Values[int](a)))
		_, err := hetero.First[int](a)
		assert.ErrorIs(t, err, hetero.ErrOutOfRange)
		assert.False(t, hetero.Swap[int, int](a, 0, 0))
	})
}
