package sinhala

import "testing"

func TestRuleStorePutGet(t *testing.T) {
	s := newRuleStore()
	if err := s.Put(42, 7); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	id, ok := s.Get(42)
	if !ok || id != 7 {
		t.Fatalf("expected rule 7 at state 42, got %d (%v)", id, ok)
	}
	if _, ok := s.Get(41); ok {
		t.Fatalf("state 41 should be absent")
	}
	if _, ok := s.Get(1000); ok {
		t.Fatalf("state beyond store should be absent")
	}
}

func TestRuleStoreOverwrite(t *testing.T) {
	s := newRuleStore()
	if err := s.Put(7, 3); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := s.Put(7, 9); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	if id, _ := s.Get(7); id != 9 {
		t.Fatalf("expected overwritten id 9, got %d", id)
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Count())
	}
}

func TestRuleStoreRejectsNegative(t *testing.T) {
	s := newRuleStore()
	if err := s.Put(-1, 0); err == nil {
		t.Fatalf("expected error for negative state")
	}
	if err := s.Put(3, -2); err == nil {
		t.Fatalf("expected error for negative rule id")
	}
}
