package uihelpers

import (
	"math"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 800},
		{799, 800},
		{800, 800},
		{1600, 1600},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 320 || h > 560 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestComputeBarWidth(t *testing.T) {
	if w := ComputeBarWidth(1000, 1); w != 90 {
		t.Fatalf("single bar should clamp to 90, got %d", w)
	}
	if w := ComputeBarWidth(900, 40); w != 14 {
		t.Fatalf("crowded chart should clamp to 14, got %d", w)
	}
	if w := ComputeBarWidth(1000, 8); w != 55 {
		t.Fatalf("8 bars on 1000px => %d want 55", w)
	}
	if w := ComputeBarWidth(800, 0); w != 60 {
		t.Fatalf("zero bars fallback => %d want 60", w)
	}
}

func TestBuildNumericTicksAndFormat(t *testing.T) {
	cases := []struct {
		min, max float64
		n        int
	}{
		{0, 100, 6},
		{0, 1, 5},
		{25, 75, 6},
		{-10, 10, 7},
	}
	for _, c := range cases {
		vals := BuildNumericTicks(c.min, c.max, c.n)
		if len(vals) < 2 {
			t.Fatalf("expected >=2 ticks for %#v got %v", c, vals)
		}
		if vals[0] > c.min && math.Abs(vals[0]-c.min) > 1e-6 {
			t.Fatalf("first tick %v should not exceed min %v", vals[0], c.min)
		}
		if last := vals[len(vals)-1]; last < c.max && math.Abs(last-c.max) > 1e-6 {
			t.Fatalf("last tick %v should not be below max %v (vals=%v)", last, c.max, vals)
		}
		for _, v := range vals {
			_ = FormatNumericTick(v)
		}
	}

	if got := FormatNumericTick(123.4); got != "123" {
		t.Fatalf("format 123.4 => %q want 123", got)
	}
	if got := FormatNumericTick(12.34); got != "12.3" {
		t.Fatalf("format 12.34 => %q want 12.3", got)
	}
	if got := FormatNumericTick(1.234); got != "1.23" {
		t.Fatalf("format 1.234 => %q want 1.23", got)
	}
	if got := FormatNumericTick(0); got != "0" {
		t.Fatalf("format 0 => %q want 0", got)
	}
}

func TestAxisRange(t *testing.T) {
	// Win percentage stays on the fixed comparison window.
	lo, hi := AxisRange("winPercentage", 99)
	if lo != 25 || hi != 75 {
		t.Fatalf("winPercentage range = [%v,%v] want [25,75]", lo, hi)
	}
	lo, hi = AxisRange("onFirePercentage", 10)
	if lo != 25 || hi != 75 {
		t.Fatalf("percentage stats should share the fixed window, got [%v,%v]", lo, hi)
	}
	// Everything else anchors at zero with headroom above the max.
	lo, hi = AxisRange("eliminations", 4321)
	if lo != 0 {
		t.Fatalf("non-percentage stats must start at 0, got %v", lo)
	}
	if hi <= 4321 {
		t.Fatalf("axis top %v leaves no headroom over max 4321", hi)
	}
	lo, hi = AxisRange("gamesWon", 0)
	if lo != 0 || hi <= 0 {
		t.Fatalf("zero max should still produce a positive range, got [%v,%v]", lo, hi)
	}
}

func TestPrettyStatLabel(t *testing.T) {
	cases := []struct{ in, want string }{
		{"healingDoneAvgPer10Min", "Healing Done Avg Per 10 Min"},
		{"winPercentage", "Win Percentage"},
		{"eliminations", "Eliminations"},
		{"", ""},
	}
	for _, c := range cases {
		if got := PrettyStatLabel(c.in); got != c.want {
			t.Fatalf("PrettyStatLabel(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestBarLabel(t *testing.T) {
	if got := BarLabel("Clovis", "Ana", false); got != "Clovis\nAna" {
		t.Fatalf("label = %q", got)
	}
	if got := BarLabel("Clovis", "Echo", true); got != "Clovis\nEcho *" {
		t.Fatalf("low-time label = %q", got)
	}
}
