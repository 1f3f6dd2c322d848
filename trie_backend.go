package sinhala

import (
	"sort"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// trieBackend stores keys in a prefix trie and finds the longest match by
// probing candidate lengths from the longest key length downwards.
// It is slower than the DAT backend but can enumerate keys by prefix.
type trieBackend struct {
	frozen bool
	keys   *trie.Trie
	count  int
	maxLen int // longest key, in runes
}

func newTrieBackend() *trieBackend {
	return &trieBackend{keys: trie.New()}
}

func (tb *trieBackend) Insert(key string, id int) error {
	invariant(!tb.frozen, "insert into frozen trie backend")
	if _, found := tb.keys.Find(key); found {
		return nil
	}
	tb.keys.Add(key, id)
	tb.count++
	tb.maxLen = max(tb.maxLen, utf8.RuneCountInString(key))
	return nil
}

func (tb *trieBackend) Freeze() {
	tb.frozen = true
}

func (tb *trieBackend) Longest(s string) (int, int) {
	offsets := make([]int, 0, tb.maxLen+1)
	for i := range s {
		if len(offsets) > tb.maxLen {
			break
		}
		offsets = append(offsets, i)
	}
	if len(offsets) <= tb.maxLen {
		offsets = append(offsets, len(s))
	}
	for k := len(offsets) - 1; k >= 1; k-- {
		node, found := tb.keys.Find(s[:offsets[k]])
		if !found {
			continue
		}
		if id, ok := node.Meta().(int); ok {
			return id, offsets[k]
		}
	}
	return absentRule, 0
}

func (tb *trieBackend) WithPrefix(prefix string) []string {
	keys := tb.keys.PrefixSearch(prefix)
	sort.Strings(keys)
	return keys
}

func (tb *trieBackend) Stats() indexStats {
	return indexStats{
		Backend:    BackendTrie,
		UsedSlots:  tb.count,
		TotalSlots: tb.count,
		MaxStateID: tb.maxLen,
	}
}
