package magnetic

import "testing"

func TestInjectMoveConsumedOnePerAdvance(t *testing.T) {
	tr := NewPointerTracker()
	tr.InjectMove(1, 1)
	tr.InjectMove(2, 2)
	if tr.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", tr.Pending())
	}
	if !tr.Advance() || tr.Position() != (Vec2{1, 1}) {
		t.Fatalf("first Advance: %v", tr.Position())
	}
	if !tr.Advance() || tr.Position() != (Vec2{2, 2}) {
		t.Fatalf("second Advance: %v", tr.Position())
	}
	if tr.Advance() {
		t.Error("Advance on empty queue should return false")
	}
}

func TestInjectPath(t *testing.T) {
	tr := NewPointerTracker()
	tr.InjectPath(0, 0, 100, 50, 5)
	if tr.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", tr.Pending())
	}
	var got []Vec2
	for tr.Advance() {
		got = append(got, tr.Position())
	}
	if got[0] != (Vec2{0, 0}) || got[4] != (Vec2{100, 50}) {
		t.Errorf("endpoints = %v, %v", got[0], got[4])
	}
	if !approxEqual(got[2].X, 50, 1e-9) || !approxEqual(got[2].Y, 25, 1e-9) {
		t.Errorf("midpoint = %v, want (50,25)", got[2])
	}
}

func TestInjectPathMinimumFrames(t *testing.T) {
	tr := NewPointerTracker()
	tr.InjectPath(0, 0, 10, 10, 0)
	if tr.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", tr.Pending())
	}
	tr.ClearInjected()
	if tr.Pending() != 0 {
		t.Error("ClearInjected should empty the queue")
	}
}

func TestInjectedMovesNotifyHandlers(t *testing.T) {
	tr := NewPointerTracker()
	var seen []Vec2
	tr.OnMove(func(p Vec2) { seen = append(seen, p) })
	tr.InjectPath(0, 0, 10, 0, 3)
	for tr.Advance() {
	}
	if len(seen) != 3 || seen[1] != (Vec2{5, 0}) {
		t.Errorf("handler saw %v", seen)
	}
}
