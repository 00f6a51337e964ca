package ui

import (
	"regexp"
	"strings"
	"testing"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

// containsPlain checks for a substring with ANSI styling stripped.
func containsPlain(s, substr string) bool {
	return strings.Contains(ansiRE.ReplaceAllString(s, ""), substr)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "right here"},
		{42, "42m"},
		{999, "999m"},
		{1000, "1.0km"},
		{2350, "2.4km"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDistance(tt.meters); got != tt.want {
				t.Errorf("formatDistance(%v) = %q, want %q", tt.meters, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four five", 9, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	for _, line := range lines {
		if len(line) > 10 {
			t.Errorf("line too long: %q", line)
		}
	}
}

func TestHeartScalesDuringBurst(t *testing.T) {
	c := NewCard()

	rest := c.renderHeart(true, 1.0)
	burst := c.renderHeart(true, 1.8)
	if !containsPlain(rest, "♥") {
		t.Error("liked heart missing")
	}
	if countPlain(burst, "♥") <= countPlain(rest, "♥") {
		t.Error("burst should render a larger heart")
	}
	if !containsPlain(c.renderHeart(false, 1.0), "♡") {
		t.Error("unliked heart should be hollow")
	}
}

func countPlain(s, substr string) int {
	return strings.Count(ansiRE.ReplaceAllString(s, ""), substr)
}

func TestBurstSettles(t *testing.T) {
	b := newLikeBurst()
	b.Trigger()

	if b.Scale() <= 1.0 {
		t.Fatal("burst should start enlarged")
	}
	for i := 0; i < 1000 && b.Step(); i++ {
	}
	if b.Scale() != 1.0 {
		t.Errorf("scale = %v, want 1.0 after settling", b.Scale())
	}
}

func TestTransitionCoverageRises(t *testing.T) {
	tr := newTransition()
	if tr.Coverage() != 1.0 {
		t.Fatalf("fresh transition coverage = %v, want 1.0", tr.Coverage())
	}

	tr.Restart()
	if tr.Coverage() != 0 {
		t.Fatalf("restarted coverage = %v, want 0", tr.Coverage())
	}

	for i := 0; i < 1000 && tr.Step(); i++ {
		if c := tr.Coverage(); c < 0 || c > 1 {
			t.Fatalf("coverage out of range: %v", c)
		}
	}
	if tr.Coverage() != 1.0 {
		t.Errorf("settled coverage = %v, want 1.0", tr.Coverage())
	}
}
