package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()
	if _, _, ok := f.Click(); ok {
		t.Fatal("new frame should have no click")
	}

	f.SetClick(3, 4)
	f.SetClick(7, 9)
	x, y, ok := f.Click()
	if !ok || x != 7 || y != 9 {
		t.Errorf("Click() = (%d, %d, %v), expected the latest click (7, 9)", x, y, ok)
	}

	clone := f.Clone()
	f.Clear()
	if _, _, ok := f.Click(); ok {
		t.Error("Clear() should drop the click")
	}
	if _, _, ok := clone.Click(); !ok {
		t.Error("Clone() should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", ColorRed},
		{" Pink ", ColorPink},
		{"orange", ColorOrange},
		{"bright-cyan", ColorBrightCyan},
		{"bright-orange", ColorOrange},
		{"chartreuse", ColorDefault},
	}
	for _, tc := range tests {
		if got := ParseColor(tc.in); got != tc.want {
			t.Errorf("ParseColor(%q) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
