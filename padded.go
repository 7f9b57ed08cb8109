package atomic

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/sys/cpu"
)

// PaddedValue is a Value surrounded by cache line padding, for cells
// that live in arrays or next to hot data and would otherwise false
// share.
type PaddedValue[T Atom] struct {
	_ cpu.CacheLinePad
	Value[T]
	_ cpu.CacheLinePad
}

// PaddedInt is an Int surrounded by cache line padding.
type PaddedInt[T constraints.Integer] struct {
	_ cpu.CacheLinePad
	Int[T]
	_ cpu.CacheLinePad
}

// PaddedBool is a Bool surrounded by cache line padding.
type PaddedBool struct {
	_ cpu.CacheLinePad
	Bool
	_ cpu.CacheLinePad
}
