package atomic

import "sync/atomic"

// Pointer is an atomic pointer to T. The nil pointer is an ordinary
// value: it loads, stores and exchanges like any other, representing the
// absent case without widening the cell.
type Pointer[T any] struct {
	pointer atomic.Pointer[T]
}

// NewPointer returns a Pointer initialized to pointer.
func NewPointer[T any](pointer *T) *Pointer[T] {
	p := &Pointer[T]{}
	p.pointer.Store(pointer)
	return p
}

// Load returns the current pointer.
func (p *Pointer[T]) Load() *T {
	return p.pointer.Load()
}

// Store sets the pointer to new.
func (p *Pointer[T]) Store(new *T) {
	p.pointer.Store(new)
}

// Swap stores new and returns the pointer held before.
func (p *Pointer[T]) Swap(new *T) (old *T) {
	return p.pointer.Swap(new)
}

// CompareAndSwap stores new only if the current pointer equals old and
// reports whether the store happened.
func (p *Pointer[T]) CompareAndSwap(old, new *T) bool {
	return p.pointer.CompareAndSwap(old, new)
}

// CompareExchange is CompareAndSwap returning the pointer observed by
// the operation.
func (p *Pointer[T]) CompareExchange(old, new *T) (prev *T, swapped bool) {
	for {
		current := p.pointer.Load()
		if current != old {
			return current, false
		}
		if p.pointer.CompareAndSwap(old, new) {
			return old, true
		}
	}
}

// FetchUpdate applies f to the current pointer until the replacement can
// be stored or f declines. The semantics match Value.FetchUpdate.
func (p *Pointer[T]) FetchUpdate(f func(pointer *T) (*T, bool)) (prev *T, updated bool) {
	for {
		current := p.pointer.Load()
		next, ok := f(current)
		if !ok {
			return current, false
		}
		if p.pointer.CompareAndSwap(current, next) {
			return current, true
		}
	}
}
