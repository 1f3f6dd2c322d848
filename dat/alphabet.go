package dat

// Alphabet maps BMP runes to dense symbol IDs.
//
// Rule tables use small, clustered alphabets (ASCII, Latin-1, the Sinhala
// block), so the map is a two-level page table: Top[hi] holds a 1-based page
// index for the high byte of the rune, Pages holds 256 entries per page.
// Symbol 0 means "not in the alphabet".
type Alphabet struct {
	Top   [256]uint16
	Pages []uint16
	size  uint16
}

// Size returns the largest symbol ID handed out so far.
func (a *Alphabet) Size() uint16 { return a.size }

// Symbol returns the dense ID of r, or 0 if r is not part of the alphabet.
func (a *Alphabet) Symbol(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := a.Top[r>>8]
	if pi == 0 {
		return 0
	}
	return a.Pages[int(pi-1)<<8+int(r&0xFF)]
}

// Intern returns the dense ID of r, assigning the next free one if r is new.
// It returns 0 for runes outside the BMP or when the ID space is exhausted.
func (a *Alphabet) Intern(r rune) uint16 {
	if sym := a.Symbol(r); sym != 0 {
		return sym
	}
	if r < 0 || r > 0xFFFF || a.size == ^uint16(0) {
		return 0
	}
	hi := r >> 8
	pi := a.Top[hi]
	if pi == 0 {
		a.Pages = append(a.Pages, make([]uint16, 256)...)
		pi = uint16(len(a.Pages) >> 8)
		a.Top[hi] = pi
	}
	a.size++
	a.Pages[int(pi-1)<<8+int(r&0xFF)] = a.size
	return a.size
}

// NumPages returns the number of allocated pages.
func (a *Alphabet) NumPages() int { return len(a.Pages) >> 8 }
