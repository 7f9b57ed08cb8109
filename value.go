package atomic

import (
	"fmt"
	"sync/atomic"
)

// Value is an atomic container for a value of type T. All operations are
// lock-free and translate to single primitives on the hosting cell.
// Comparison based operations compare cell images, which for every Atom
// type is exactly value equality.
//
// The zero Value holds the zero value of T.
type Value[T Atom] struct {
	cell atomic.Uint64
}

// NewValue returns a Value initialized to value.
func NewValue[T Atom](value T) *Value[T] {
	v := &Value[T]{}
	v.cell.Store(bitsOf(value))
	return v
}

// Load returns the current value.
func (v *Value[T]) Load() T {
	return fromBits[T](v.cell.Load())
}

// Store sets the value to new.
func (v *Value[T]) Store(new T) {
	v.cell.Store(bitsOf(new))
}

// Swap stores new and returns the value held before.
func (v *Value[T]) Swap(new T) (old T) {
	return fromBits[T](v.cell.Swap(bitsOf(new)))
}

// CompareAndSwap stores new only if the current value equals old and
// reports whether the store happened.
func (v *Value[T]) CompareAndSwap(old, new T) bool {
	return v.cell.CompareAndSwap(bitsOf(old), bitsOf(new))
}

// CompareExchange is CompareAndSwap returning the value observed by the
// operation. The store happened exactly when swapped is true, in which
// case prev equals old.
func (v *Value[T]) CompareExchange(old, new T) (prev T, swapped bool) {
	oldBits, newBits := bitsOf(old), bitsOf(new)
	for {
		current := v.cell.Load()
		if current != oldBits {
			return fromBits[T](current), false
		}
		if v.cell.CompareAndSwap(oldBits, newBits) {
			return old, true
		}
	}
}

// FetchUpdate applies f to the current value until the replacement can
// be stored or f declines. f observes a freshly loaded value on every
// attempt and returns the replacement and true, or any value and false
// to leave the container untouched. FetchUpdate returns the value
// observed by the final attempt and whether a store happened. f may run
// more than once and must not have side effects.
func (v *Value[T]) FetchUpdate(f func(value T) (T, bool)) (prev T, updated bool) {
	for {
		current := v.cell.Load()
		next, ok := f(fromBits[T](current))
		if !ok {
			return fromBits[T](current), false
		}
		if v.cell.CompareAndSwap(current, bitsOf(next)) {
			return fromBits[T](current), true
		}
	}
}

func (v *Value[T]) String() string {
	return fmt.Sprint(v.Load())
}
