package aamask

import "testing"

func TestTrySeedOnlyOnce(t *testing.T) {
	m := New(4, 4)
	calls := 0
	push := func() { calls++ }

	if !m.TrySeed(1, 1, push) {
		t.Fatal("first TrySeed should succeed")
	}
	if m.TrySeed(1, 1, push) {
		t.Fatal("second TrySeed on the same pixel should fail")
	}
	if calls != 1 {
		t.Fatalf("push called %d times, want 1", calls)
	}
	if !m.IsSet(1, 1) {
		t.Fatal("IsSet should report true after TrySeed")
	}
}

func TestIsSetFalseInitially(t *testing.T) {
	m := New(4, 4)
	if m.IsSet(0, 0) {
		t.Fatal("fresh mask should be all-false")
	}
}
