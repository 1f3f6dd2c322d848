package sinhala

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/sinhala/dat"
)

type datBuildNode struct {
	state    uint32
	rule     int
	children map[uint16]*datBuildNode
}

func newDATBuildNode() *datBuildNode {
	return &datBuildNode{rule: absentRule, children: make(map[uint16]*datBuildNode)}
}

// datBackend collects keys in a pointer trie and compiles them into a
// double-array trie on Freeze. Lookups walk the frozen trie one rune at a
// time and remember the last state carrying a rule.
type datBackend struct {
	frozen   bool
	root     *datBuildNode
	compiled *dat.DAT
	rules    *ruleStore
}

func newDATBackend() *datBackend {
	return &datBackend{
		root:     newDATBuildNode(),
		compiled: dat.New(),
		rules:    newRuleStore(),
	}
}

func (db *datBackend) Insert(key string, id int) error {
	invariant(!db.frozen, "insert into frozen DAT backend")
	n := db.root
	for _, r := range key {
		sym := db.compiled.Alphabet.Intern(r)
		if sym == 0 {
			return fmt.Errorf("%w %q: rune %U not representable in DAT alphabet", ErrInvalidRule, key, r)
		}
		child := n.children[sym]
		if child == nil {
			child = newDATBuildNode()
			n.children[sym] = child
		}
		n = child
	}
	if n.rule == absentRule {
		n.rule = id
	}
	return nil
}

func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	db.root.state = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.rule != absentRule {
			err := db.rules.Put(int(n.state), n.rule)
			invariant(err == nil, "cannot store rule id for DAT state")
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := d.FindBase(labels)
		d.Ensure(base + int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.frozen = true
}

func (db *datBackend) Longest(s string) (int, int) {
	invariant(db.frozen, "lookup in DAT backend before freeze")
	d := db.compiled
	state := d.Root
	best, bestLen := absentRule, 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		state = d.Step(state, r)
		if state == 0 {
			break
		}
		i += size
		if id, ok := db.rules.Get(int(state)); ok {
			best, bestLen = id, i
		}
	}
	return best, bestLen
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(),
		db.compiled.Alphabet.Size(), db.frozen)
}

func (db *datBackend) Stats() indexStats {
	d := db.compiled
	stats := indexStats{
		Backend:    BackendDAT,
		TotalSlots: d.NStates(),
		MaxStateID: int(d.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			stats.UsedSlots++
			stats.MaxStateID = max(stats.MaxStateID, i)
		}
	}
	return stats
}
