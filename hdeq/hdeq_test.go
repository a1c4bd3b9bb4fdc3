package hdeq_test

import (
	"testing"

	hetero "github.com/venkatarajasekhar/HCL-2"
	"github.com/venkatarajasekhar/HCL-2/hdeq"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/must"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestDeq(t *testing.T) {
	s := testcase.NewSpec(t)

	// declared type list: int, float64, string, int, int, float64, string
	deq := let.Var(s, func(t *testcase.T) *hdeq.Deq {
		return hdeq.New(
			hdeq.Of[int](),
			hdeq.Of[float64](),
			hdeq.Of[string](),
			hdeq.Of[int](),
			hdeq.Of[int](),
			hdeq.Of[float64](),
			hdeq.Of[string](),
		)
	})

	s.Test("smoke", func(t *testcase.T) {
		d := deq.Get(t)

		assert.Equal(t, 7, d.Len())
		assert.Equal(t, 3, hdeq.Multiplicity[int](d))
		assert.Equal(t, 2, hdeq.Multiplicity[float64](d))
		assert.Equal(t, 2, hdeq.Multiplicity[string](d))
		assert.Equal(t, 0, hdeq.Multiplicity[float32](d))
		assert.True(t, hdeq.Contains[float64](d))
		assert.False(t, hdeq.Contains[float32](d))

		assert.NoError(t, hdeq.PushBack(d, 2, 1))
		assert.NoError(t, hdeq.PushFront(d, 1, 1))
		assert.NoError(t, hdeq.PushBack(d, 3, 1))
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(must.Must(hdeq.Values[int](d, 1))))

		// the sibling int slots have their own queues
		assert.True(t, must.Must(hdeq.IsEmpty[int](d)))
		assert.True(t, must.Must(hdeq.IsEmpty[int](d, 2)))

		front := must.Must(hdeq.PopFront[int](d, 1))
		back := must.Must(hdeq.PopBack[int](d, 1))
		assert.Equal(t, 1, front)
		assert.Equal(t, 3, back)
		assert.Equal(t, 1, must.Must(hdeq.Size[int](d, 1)))
	})

	s.Describe("Get", func(s *testcase.Spec) {
		s.Then("the same slot is served on every lookup", func(t *testcase.T) {
			d := deq.Get(t)

			first := must.Must(hdeq.Get[string](d, 1))
			t.Random.Repeat(3, 7, func() {
				assert.True(t, first == must.Must(hdeq.Get[string](d, 1)))
			})
		})

		s.Then("the omitted occurrence defaults to the first repetition", func(t *testcase.T) {
			d := deq.Get(t)
			assert.True(t, must.Must(hdeq.Get[float64](d)) == must.Must(hdeq.Get[float64](d, 0)))
		})

		s.Then("an undeclared type or occurrence is reported", func(t *testcase.T) {
			d := deq.Get(t)

			_, err := hdeq.Get[float32](d)
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)

			_, err = hdeq.Get[int](d, 3)
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)

			_, err = hdeq.Get[int](d, t.Random.IntBetween(-100, -1))
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)
		})

		s.Then("a failed lookup leaves the ones that follow untouched", func(t *testcase.T) {
			d := deq.Get(t)

			_, err := hdeq.Get[string](d, 2)
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)

			c := must.Must(hdeq.Get[string](d, 1))
			c.Append("ok")
			assert.Equal(t, []string{"ok"}, must.Must(hdeq.Get[string](d, 1)).ToSlice())
		})
	})

	s.Describe("forwarders", func(s *testcase.Spec) {
		s.Then("both ends of the selected slot are reachable", func(t *testcase.T) {
			d := deq.Get(t)

			assert.NoError(t, hdeq.PushBack(d, "b", 1))
			assert.NoError(t, hdeq.PushBack(d, "c", 1))
			assert.NoError(t, hdeq.PushFront(d, "a", 1))

			assert.Equal(t, 3, must.Must(hdeq.Size[string](d, 1)))
			assert.Equal(t, "a", must.Must(hdeq.Front[string](d, 1)))
			assert.Equal(t, "c", must.Must(hdeq.Back[string](d, 1)))
			assert.Equal(t, "b", must.Must(hdeq.At[string](d, 1, 1)))

			assert.NoError(t, hdeq.SetAt(d, 1, "B", 1))
			assert.Equal(t, "B", must.Must(hdeq.At[string](d, 1, 1)))

			assert.NoError(t, hdeq.Assign(d, []string{"x", "y"}, 1))
			assert.Equal(t, []string{"x", "y"}, iterkit.Collect(must.Must(hdeq.Values[string](d, 1))))

			assert.NoError(t, hdeq.Clear[string](d, 1))
			assert.True(t, must.Must(hdeq.IsEmpty[string](d, 1)))
		})

		s.Then("boundary reads on an empty slot are out of range", func(t *testcase.T) {
			d := deq.Get(t)

			_, err := hdeq.Front[int](d)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
			_, err = hdeq.Back[int](d)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
			_, err = hdeq.PopFront[int](d)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
			_, err = hdeq.PopBack[int](d)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
			_, err = hdeq.At[int](d, 0)
			assert.ErrorIs(t, err, hetero.ErrOutOfRange)
			assert.ErrorIs(t, hdeq.SetAt(d, 0, 1), hetero.ErrOutOfRange)
		})

		s.Then("every forwarder fails fast on an undeclared type", func(t *testcase.T) {
			d := deq.Get(t)

			_, err := hdeq.Size[float32](d)
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)
			_, err = hdeq.Front[float32](d)
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)
			_, err = hdeq.PopBack[float32](d)
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)
			_, err = hdeq.Values[float32](d)
			assert.ErrorIs(t, err, hetero.ErrNotDeclared)
			assert.ErrorIs(t, hdeq.PushBack(d, float32(1)), hetero.ErrNotDeclared)
			assert.ErrorIs(t, hdeq.PushFront(d, float32(1)), hetero.ErrNotDeclared)
			assert.ErrorIs(t, hdeq.Assign(d, []float32{1}), hetero.ErrNotDeclared)
			assert.ErrorIs(t, hdeq.Clear[float32](d), hetero.ErrNotDeclared)
		})
	})

	s.Describe("#Swap and #CopyFrom and #Clone", func(s *testcase.Spec) {
		oth := let.Var(s, func(t *testcase.T) *hdeq.Deq {
			return hdeq.New(
				hdeq.Of[int](),
				hdeq.Of[float64](),
				hdeq.Of[string](),
				hdeq.Of[int](),
				hdeq.Of[int](),
				hdeq.Of[float64](),
				hdeq.Of[string](),
			)
		})

		s.Then("swap trades the backing queues", func(t *testcase.T) {
			a, b := deq.Get(t), oth.Get(t)
			assert.NoError(t, hdeq.PushBack(a, 1, 2))
			assert.NoError(t, hdeq.PushBack(b, 2, 2))

			assert.NoError(t, a.Swap(b))

			assert.Equal(t, 2, must.Must(hdeq.Front[int](a, 2)))
			assert.Equal(t, 1, must.Must(hdeq.Front[int](b, 2)))
		})

		s.Then("copy from replaces content in place and deep", func(t *testcase.T) {
			dst, src := deq.Get(t), oth.Get(t)
			assert.NoError(t, hdeq.PushBack(src, "s", 1))
			assert.NoError(t, hdeq.PushBack(dst, "gone", 1))

			held := must.Must(hdeq.Get[string](dst, 1))
			assert.NoError(t, dst.CopyFrom(src))

			assert.True(t, held == must.Must(hdeq.Get[string](dst, 1)))
			assert.Equal(t, []string{"s"}, held.ToSlice())

			assert.NoError(t, hdeq.PushBack(src, "later", 1))
			assert.Equal(t, []string{"s"}, held.ToSlice())
		})

		s.Then("clone builds an independent equal deque", func(t *testcase.T) {
			d := deq.Get(t)
			assert.NoError(t, hdeq.PushBack(d, 3.14, 1))

			c := d.Clone()

			assert.Equal(t, d.Types(), c.Types())
			assert.Equal(t, 3.14, must.Must(hdeq.Front[float64](c, 1)))

			assert.NoError(t, hdeq.PushBack(c, 2.71, 1))
			assert.Equal(t, 1, must.Must(hdeq.Size[float64](d, 1)))
			assert.Equal(t, 2, must.Must(hdeq.Size[float64](c, 1)))
		})

		s.When("the declared type lists differ", func(s *testcase.Spec) {
			oth.Let(s, func(t *testcase.T) *hdeq.Deq {
				return hdeq.New(hdeq.Of[int]())
			})

			s.Then("swap and copy are rejected", func(t *testcase.T) {
				a, b := deq.Get(t), oth.Get(t)

				assert.ErrorIs(t, a.Swap(b), hetero.ErrNotDeclared)
				assert.ErrorIs(t, a.CopyFrom(b), hetero.ErrNotDeclared)
			})
		})
	})

	s.Describe("algorithms", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			d := deq.Get(t)
			assert.NoError(t, hdeq.PushBack(d, "ab"))
			assert.NoError(t, hdeq.PushBack(d, "cd", 1))
			assert.NoError(t, hdeq.PushBack(d, "x", 1))
		})

		s.Then("the predicate ranges over every repetition of the type", func(t *testcase.T) {
			d := deq.Get(t)

			twoLong := func(s string) bool { return len(s) == 2 }

			assert.False(t, hdeq.AllOf(d, twoLong)) // "x" breaks it
			assert.True(t, hdeq.AnyOf(d, twoLong))
			assert.False(t, hdeq.NoneOf(d, twoLong))

			assert.True(t, hdeq.AllOf(d, func(float32) bool { return false }))

			var flat []string
			for c := range hdeq.Each[string](d) {
				flat = append(flat, c.ToSlice()...)
			}
			assert.Equal(t, []string{"ab", "cd", "x"}, flat)
		})
	})
}
