// Package dat implements a frozen double-array trie over rune keys.
//
// States are indices into Base/Check; 0 is unused and Root is 1. A transition
// from state s on symbol c goes to t = Base[s] + c, valid iff Check[t] == s.
// Symbols are dense IDs from an Alphabet, never 0.
//
// The trie stores structure only. Callers keep payloads in their own arrays
// indexed by state.
package dat

// DAT is a frozen double-array trie.
type DAT struct {
	Root     uint32
	Base     []int32
	Check    []int32
	Alphabet Alphabet
}

// New returns an empty trie consisting of the root state only.
func New() *DAT {
	return &DAT{
		Root:  1,
		Base:  make([]int32, 2),
		Check: make([]int32, 2),
	}
}

// NStates returns the number of allocated slots.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns the successor of state on symbol, if there is one.
func (d *DAT) Transition(state uint32, symbol uint16) (uint32, bool) {
	if symbol == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(symbol)
	if t <= 0 || int(t) >= len(d.Check) || d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Step follows the transition on rune r. It returns 0 if there is none.
func (d *DAT) Step(state uint32, r rune) uint32 {
	next, ok := d.Transition(state, d.Alphabet.Symbol(r))
	if !ok {
		return 0
	}
	return next
}

// FindBase returns the smallest base at which every label lands on a free
// slot. Slots beyond the current arrays count as free.
func (d *DAT) FindBase(labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == int(d.Root) || (t < len(d.Check) && d.Check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

// Ensure grows the arrays so that idx is a valid slot.
func (d *DAT) Ensure(idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}
