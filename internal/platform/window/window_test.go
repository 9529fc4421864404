package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func pressedSet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestSyncInput(t *testing.T) {
	in := core.NewInputState()

	syncInput(in, pressedSet(ebiten.KeySpace, ebiten.KeyD))
	if !in.IsActive(core.KeyUp) || !in.IsActive(core.KeyRight) {
		t.Fatalf("Active() = %v, expected Up and Right", in.Active())
	}
	if in.IsActive(core.KeyLeft) {
		t.Error("Left was never pressed")
	}

	// Releasing D while keeping space down
	syncInput(in, pressedSet(ebiten.KeySpace))
	if in.IsActive(core.KeyRight) {
		t.Error("Right should be released")
	}
	if !in.IsActive(core.KeyUp) {
		t.Error("Up should still be held")
	}

	syncInput(in, pressedSet())
	if len(in.Active()) != 0 {
		t.Errorf("Active() = %v, expected nothing held", in.Active())
	}
}

func TestSyncInputAlternateBindings(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Key
	}{
		{ebiten.KeyArrowUp, core.KeyUp},
		{ebiten.KeyW, core.KeyUp},
		{ebiten.KeyArrowDown, core.KeyDown},
		{ebiten.KeyS, core.KeyDown},
		{ebiten.KeyArrowLeft, core.KeyLeft},
		{ebiten.KeyA, core.KeyLeft},
		{ebiten.KeyArrowRight, core.KeyRight},
	}

	for _, tc := range tests {
		in := core.NewInputState()
		syncInput(in, pressedSet(tc.key))
		if active := in.Active(); len(active) != 1 || active[0] != tc.want {
			t.Errorf("%v held: Active() = %v, expected [%v]", tc.key, active, tc.want)
		}
	}
}

func TestParseFontPx(t *testing.T) {
	tests := []struct {
		font   string
		want   float64
		wantOK bool
	}{
		{"40px Helvetica", 40, true},
		{"bold 12.5px Arial", 12.5, true},
		{"Helvetica", 0, false},
		{"-3px mono", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, ok := parseFontPx(tc.font)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("parseFontPx(%q) = %v, %v, expected %v, %v", tc.font, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTextOrigin(t *testing.T) {
	// 9 glyphs at 40px: 9 * 6 * 2.5 = 135 px wide, top 30 px above the baseline
	tests := []struct {
		align core.TextAlign
		wantX float64
	}{
		{core.AlignLeft, 400},
		{core.AlignCenter, 332.5},
		{core.AlignRight, 265},
	}

	for _, tc := range tests {
		x, y := textOrigin(9, 400, 200, 40, tc.align)
		if x != tc.wantX || y != 170 {
			t.Errorf("textOrigin(align=%d) = (%v, %v), expected (%v, 170)", tc.align, x, y, tc.wantX)
		}
	}
}

func TestToRect(t *testing.T) {
	got := toRect(core.NewRectF(-0.5, 1.2, 10, 10))
	if got.Min.X != -1 || got.Min.Y != 1 || got.Max.X != 10 || got.Max.Y != 12 {
		t.Errorf("toRect() = %v, expected (-1,1)-(10,12)", got)
	}
}
