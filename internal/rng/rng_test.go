package rng

import "testing"

func TestSplitMix64Deterministic(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 1000; i++ {
		da, db := a.NextDouble(), b.NextDouble()
		if da != db {
			t.Fatalf("draw %d diverged: %v != %v", i, da, db)
		}
	}
}

func TestSplitMix64DifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.NextDouble() != b.NextDouble() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("seeds 1 and 2 produced identical streams")
	}
}

func TestNextDoubleRange(t *testing.T) {
	s := New(42)
	for i := 0; i < 100000; i++ {
		v := s.NextDouble()
		if v < 0 || v >= 1 {
			t.Fatalf("NextDouble out of [0,1): %v", v)
		}
	}
}

func TestNextIntRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.NextInt(6)
		if v < 0 || v >= 6 {
			t.Fatalf("NextInt(6) out of range: %v", v)
		}
	}
}

func TestNextIntPanicsOnNonPositiveBound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-positive bound")
		}
	}()
	New(1).NextInt(0)
}

func TestFluentRNGReplaysScriptedValues(t *testing.T) {
	f := NewFluent([]float64{0.1, 0.2, 0.3}, []int{2, 4})

	if v := f.NextDouble(); v != 0.1 {
		t.Fatalf("expected 0.1, got %v", v)
	}
	if v := f.NextInt(10); v != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
	if v := f.NextDouble(); v != 0.2 {
		t.Fatalf("expected 0.2, got %v", v)
	}

	doubles, ints := f.Remaining()
	if doubles != 1 || ints != 1 {
		t.Fatalf("expected 1 remaining double and 1 remaining int, got %d %d", doubles, ints)
	}
}

func TestFluentRNGPanicsOnExhaustion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on exhausted FluentRNG")
		}
	}()
	f := NewFluent(nil, nil)
	f.NextDouble()
}
