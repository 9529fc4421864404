package runner

import "testing"

func TestAnimatorAdvance(t *testing.T) {
	a := NewAnimator(20, 2) // 50ms interval

	if a.Interval != 50 {
		t.Fatalf("Interval = %v, expected 50", a.Interval)
	}

	// 16ms steps: timer 16, 32, 48 (not > 50), 64, then the advance call
	for i := 0; i < 4; i++ {
		a.Advance(16)
	}
	if a.Frame != 0 || a.Timer != 64 {
		t.Fatalf("after 4 steps Frame=%d Timer=%v, expected 0/64", a.Frame, a.Timer)
	}

	a.Advance(16)
	if a.Frame != 1 || a.Timer != 0 {
		t.Errorf("advance call should move to frame 1 and reset timer, got %d/%v", a.Frame, a.Timer)
	}
}

func TestAnimatorWrapsAfterMaxFrame(t *testing.T) {
	a := NewAnimator(20, 2)
	a.Timer = 51

	var seen []int
	for i := 0; i < 4; i++ {
		a.Timer = 51
		a.Advance(0)
		seen = append(seen, a.Frame)
	}

	expected := []int{1, 2, 0, 1}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Fatalf("frame sequence = %v, expected %v", seen, expected)
		}
	}
}

func TestAnimatorTimerEqualToIntervalDoesNotAdvance(t *testing.T) {
	a := NewAnimator(20, 5)
	a.Timer = 50
	a.Advance(10)

	if a.Frame != 0 || a.Timer != 60 {
		t.Errorf("timer == interval must accumulate, got Frame=%d Timer=%v", a.Frame, a.Timer)
	}
}

func TestAnimatorSetSheetKeepsFrame(t *testing.T) {
	a := NewAnimator(20, 8)
	a.Frame = 7

	a.SetSheet(6, 1)
	if a.Frame != 7 || a.MaxFrame != 6 || a.Row != 1 {
		t.Fatalf("SetSheet changed frame or ignored sheet: %+v", a)
	}

	// Past the new max, the next advance wraps
	a.Timer = 51
	a.Advance(0)
	if a.Frame != 0 {
		t.Errorf("Frame = %d, expected wrap to 0", a.Frame)
	}
}

func TestAnimatorSourceRect(t *testing.T) {
	a := NewAnimator(20, 8)
	a.Frame = 3
	a.Row = 1

	r := a.SourceRect(200, 200)
	if r.X != 600 || r.Y != 200 || r.W != 200 || r.H != 200 {
		t.Errorf("SourceRect = %+v, expected (600,200,200,200)", r)
	}
}
