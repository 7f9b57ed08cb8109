package atomic

import "fmt"

// Packed is an atomic container for a type without a native cell,
// converted through a caller supplied mapping to a representation R.
// It serves hand written mappings the way Value serves built in ones,
// for example a multi field struct packed into a uint64.
//
// pack must be deterministic and injective and unpack must invert it
// exactly, otherwise comparison based operations misbehave. unpack only
// ever receives images produced by pack. A Packed must be created by
// NewPacked.
type Packed[T any, R Atom] struct {
	cell   Value[R]
	pack   func(T) R
	unpack func(R) T
}

// NewPacked returns a Packed initialized to value, converting through
// pack and unpack.
func NewPacked[T any, R Atom](value T, pack func(T) R, unpack func(R) T) *Packed[T, R] {
	p := &Packed[T, R]{pack: pack, unpack: unpack}
	p.cell.Store(pack(value))
	return p
}

// Load returns the current value.
func (p *Packed[T, R]) Load() T {
	return p.unpack(p.cell.Load())
}

// Store sets the value to new.
func (p *Packed[T, R]) Store(new T) {
	p.cell.Store(p.pack(new))
}

// Swap stores new and returns the value held before.
func (p *Packed[T, R]) Swap(new T) (old T) {
	return p.unpack(p.cell.Swap(p.pack(new)))
}

// CompareAndSwap stores new only if the current value packs to the same
// image as old and reports whether the store happened.
func (p *Packed[T, R]) CompareAndSwap(old, new T) bool {
	return p.cell.CompareAndSwap(p.pack(old), p.pack(new))
}

// CompareExchange is CompareAndSwap returning the value observed by the
// operation.
func (p *Packed[T, R]) CompareExchange(old, new T) (prev T, swapped bool) {
	prevImage, swapped := p.cell.CompareExchange(p.pack(old), p.pack(new))
	return p.unpack(prevImage), swapped
}

// FetchUpdate applies f to the current value until the replacement can
// be stored or f declines. The semantics match Value.FetchUpdate.
func (p *Packed[T, R]) FetchUpdate(f func(value T) (T, bool)) (prev T, updated bool) {
	prevImage, updated := p.cell.FetchUpdate(func(current R) (R, bool) {
		next, ok := f(p.unpack(current))
		if !ok {
			return current, false
		}
		return p.pack(next), true
	})
	return p.unpack(prevImage), updated
}

func (p *Packed[T, R]) String() string {
	return fmt.Sprint(p.Load())
}
