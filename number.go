package atomic

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Int is a Value over an integer type with arithmetic and bitwise fetch
// operations. Arithmetic wraps at the width of T regardless of the width
// of the hosting cell.
type Int[T constraints.Integer] struct {
	Value[T]
}

// NewInt returns an Int initialized to value.
func NewInt[T constraints.Integer](value T) *Int[T] {
	i := &Int[T]{}
	i.Store(value)
	return i
}

// Add atomically adds delta and returns the new value.
func (i *Int[T]) Add(delta T) (new T) {
	if unsafe.Sizeof(delta) == 8 {
		return fromBits[T](i.cell.Add(bitsOf(delta)))
	}
	for {
		current := i.cell.Load()
		next := fromBits[T](current) + delta
		if i.cell.CompareAndSwap(current, bitsOf(next)) {
			return next
		}
	}
}

// Sub atomically subtracts delta and returns the new value.
func (i *Int[T]) Sub(delta T) (new T) {
	return i.Add(-delta)
}

// Inc atomically increments and returns the new value.
func (i *Int[T]) Inc() T {
	return i.Add(1)
}

// Dec atomically decrements and returns the new value.
func (i *Int[T]) Dec() T {
	return i.Sub(1)
}

// And atomically replaces the value with its bitwise AND with operand
// and returns the value held before.
func (i *Int[T]) And(operand T) (old T) {
	return i.fetch(operand, func(value, operand T) T { return value & operand })
}

// Or atomically replaces the value with its bitwise OR with operand and
// returns the value held before.
func (i *Int[T]) Or(operand T) (old T) {
	return i.fetch(operand, func(value, operand T) T { return value | operand })
}

// Xor atomically replaces the value with its bitwise XOR with operand
// and returns the value held before.
func (i *Int[T]) Xor(operand T) (old T) {
	return i.fetch(operand, func(value, operand T) T { return value ^ operand })
}

// Nand atomically replaces the value with the negated bitwise AND with
// operand and returns the value held before.
func (i *Int[T]) Nand(operand T) (old T) {
	return i.fetch(operand, func(value, operand T) T { return ^(value & operand) })
}

// Max atomically replaces the value with the larger of the current value
// and operand and returns the value held before.
func (i *Int[T]) Max(operand T) (old T) {
	return i.fetch(operand, func(value, operand T) T {
		if value > operand {
			return value
		}
		return operand
	})
}

// Min atomically replaces the value with the smaller of the current
// value and operand and returns the value held before.
func (i *Int[T]) Min(operand T) (old T) {
	return i.fetch(operand, func(value, operand T) T {
		if value < operand {
			return value
		}
		return operand
	})
}

func (i *Int[T]) fetch(operand T, op func(value, operand T) T) (old T) {
	for {
		current := i.cell.Load()
		next := op(fromBits[T](current), operand)
		if i.cell.CompareAndSwap(current, bitsOf(next)) {
			return fromBits[T](current)
		}
	}
}
