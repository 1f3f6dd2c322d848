package sinhala

import "fmt"

const absentRule = -1
const initialRuleStoreSlots = 2 // include slot 0 + root slot

// ruleStore keeps rule IDs directly indexed by trie state. A state without
// an entry is a prefix of some key but not a key itself.
type ruleStore struct {
	ids []int32 // will grow with demand
}

func newRuleStore() *ruleStore {
	s := &ruleStore{ids: make([]int32, initialRuleStoreSlots)}
	for i := range s.ids {
		s.ids[i] = absentRule
	}
	return s
}

func (s *ruleStore) ensure(state int) {
	if state < len(s.ids) {
		return
	}
	old := len(s.ids)
	s.ids = append(s.ids, make([]int32, state+1-old)...)
	for i := old; i < len(s.ids); i++ {
		s.ids[i] = absentRule
	}
}

// Put stores rule id at trie state.
func (s *ruleStore) Put(state int, id int) error {
	if state < 0 {
		return fmt.Errorf("negative trie state: %d", state)
	}
	if id < 0 {
		return fmt.Errorf("negative rule id: %d", id)
	}
	s.ensure(state)
	s.ids[state] = int32(id)
	return nil
}

// Get returns the rule id stored at trie state, if any.
func (s *ruleStore) Get(state int) (int, bool) {
	if state < 0 || state >= len(s.ids) {
		return absentRule, false
	}
	id := s.ids[state]
	if id == absentRule {
		return absentRule, false
	}
	return int(id), true
}

// Count returns the number of states carrying a rule.
func (s *ruleStore) Count() int {
	n := 0
	for _, id := range s.ids {
		if id != absentRule {
			n++
		}
	}
	return n
}
