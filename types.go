package atomic

import "sync/atomic"

// Aliases for the fixed width standard cells, so callers mixing generic
// containers with exact width counters need a single import.
type (
	Int32   = atomic.Int32
	Int64   = atomic.Int64
	Uint32  = atomic.Uint32
	Uint64  = atomic.Uint64
	Uintptr = atomic.Uintptr
)
