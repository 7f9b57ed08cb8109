// Package atomic provides generic lock-free containers for small value
// types. A container selects a native atomic representation for its type
// parameter at compile time and converts values to and from that
// representation bit for bit, so loads, stores, swaps and compare and
// swap map directly onto hardware primitives. Types without a native
// representation do not instantiate and there is no lock fallback.
package atomic

import "unsafe"

// Atom is the set of types a Value can hold: booleans, fixed and
// platform sized integers, floats, and small arrays of bytes or of
// fixed size integers. Named types with one of these underlying types
// are included, which is how enumerations and integer newtypes qualify.
// Every member occupies 1, 2, 4 or 8 bytes and contains no pointers.
type Atom interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 |
		~[1]byte | ~[2]byte | ~[4]byte | ~[8]byte |
		~[2]int16 | ~[2]uint16 | ~[4]int16 | ~[4]uint16 |
		~[2]int32 | ~[2]uint32 | ~[2]float32
}

// bitsOf returns the cell image of v: the bytes of v placed at the start
// of a zeroed 64-bit cell. The mapping is total and injective, distinct
// values always produce distinct images, so comparing images compares
// values.
func bitsOf[T Atom](v T) uint64 {
	var bits uint64
	*(*T)(unsafe.Pointer(&bits)) = v
	return bits
}

// fromBits recovers the value from a cell image produced by bitsOf.
func fromBits[T Atom](bits uint64) T {
	return *(*T)(unsafe.Pointer(&bits))
}
