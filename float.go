package atomic

import "golang.org/x/exp/constraints"

// Float is a Value over a floating point type. Comparison based
// operations work on the bit image of the value: a NaN exchanges against
// the identical NaN and positive and negative zero are distinct.
type Float[T constraints.Float] struct {
	Value[T]
}

// NewFloat returns a Float initialized to value.
func NewFloat[T constraints.Float](value T) *Float[T] {
	f := &Float[T]{}
	f.Store(value)
	return f
}

// Add atomically adds delta and returns the new value.
func (f *Float[T]) Add(delta T) (new T) {
	for {
		current := f.cell.Load()
		next := fromBits[T](current) + delta
		if f.cell.CompareAndSwap(current, bitsOf(next)) {
			return next
		}
	}
}

// Sub atomically subtracts delta and returns the new value.
func (f *Float[T]) Sub(delta T) (new T) {
	return f.Add(-delta)
}
