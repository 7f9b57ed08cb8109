package atomic

import (
	"sync/atomic"

	"github.com/sagernet/sing/common"
)

// TypedValue is an atomic container for values of any type, held behind
// an atomic pointer to a private box. It is the escape hatch for types
// too large or too pointerful for a Value cell: operations cost an
// allocation per store and comparison based operations fall back to
// runtime equality, which panics if T is not comparable at runtime. An
// unset TypedValue loads the zero value of T.
type TypedValue[T any] atomic.Pointer[T]

func (t *TypedValue[T]) Load() T {
	value := (*atomic.Pointer[T])(t).Load()
	if value == nil {
		return common.DefaultValue[T]()
	}
	return *value
}

func (t *TypedValue[T]) Store(value T) {
	(*atomic.Pointer[T])(t).Store(&value)
}

func (t *TypedValue[T]) Swap(new T) T {
	old := (*atomic.Pointer[T])(t).Swap(&new)
	if old == nil {
		return common.DefaultValue[T]()
	}
	return *old
}

func (t *TypedValue[T]) CompareAndSwap(old, new T) bool {
	for {
		currentPointer := (*atomic.Pointer[T])(t).Load()
		currentValue := common.DefaultValue[T]()
		if currentPointer != nil {
			currentValue = *currentPointer
		}
		if any(currentValue) != any(old) {
			return false
		}
		if (*atomic.Pointer[T])(t).CompareAndSwap(currentPointer, &new) {
			return true
		}
	}
}
