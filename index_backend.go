package sinhala

// ruleIndex is the internal backend abstraction for rule-key lookup.
//
// Keys are inserted while the index is mutable; Freeze compiles the index
// and afterwards only Longest may be called. Rule IDs are indices into the
// rule slice of the owning Table.
type ruleIndex interface {
	Insert(key string, id int) error
	Freeze()
	Longest(s string) (id int, n int)
	Stats() indexStats
}

// prefixLister is implemented by backends able to enumerate keys.
type prefixLister interface {
	WithPrefix(prefix string) []string
}

type indexStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s indexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Backend names accepted by WithBackend.
const (
	BackendDAT  = "dat"
	BackendTrie = "trie"
)

func newIndex(backend string) (ruleIndex, bool) {
	switch backend {
	case "", BackendDAT:
		return newDATBackend(), true
	case BackendTrie:
		return newTrieBackend(), true
	}
	return nil, false
}
