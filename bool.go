package atomic

// Bool is a Value over bool with logical fetch operations.
type Bool struct {
	Value[bool]
}

// NewBool returns a Bool initialized to value.
func NewBool(value bool) *Bool {
	b := &Bool{}
	b.Store(value)
	return b
}

// And atomically replaces the value with the logical AND with operand
// and returns the value held before.
func (b *Bool) And(operand bool) (old bool) {
	return b.fetch(operand, func(value, operand bool) bool { return value && operand })
}

// Or atomically replaces the value with the logical OR with operand and
// returns the value held before.
func (b *Bool) Or(operand bool) (old bool) {
	return b.fetch(operand, func(value, operand bool) bool { return value || operand })
}

// Xor atomically replaces the value with the logical XOR with operand
// and returns the value held before.
func (b *Bool) Xor(operand bool) (old bool) {
	return b.fetch(operand, func(value, operand bool) bool { return value != operand })
}

// Nand atomically replaces the value with the negated logical AND with
// operand and returns the value held before.
func (b *Bool) Nand(operand bool) (old bool) {
	return b.fetch(operand, func(value, operand bool) bool { return !(value && operand) })
}

// Toggle atomically negates the value and returns the value held
// before.
func (b *Bool) Toggle() (old bool) {
	return b.Xor(true)
}

func (b *Bool) fetch(operand bool, op func(value, operand bool) bool) (old bool) {
	for {
		current := b.cell.Load()
		next := op(fromBits[bool](current), operand)
		if b.cell.CompareAndSwap(current, bitsOf(next)) {
			return fromBits[bool](current)
		}
	}
}
