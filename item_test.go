package knuthplass

import (
	"math"
	"testing"
)

// ═══════════════════════════════════════════════════════════════
//  Item Construction Tests
// ═══════════════════════════════════════════════════════════════

func TestBoxNewGluePenalty(t *testing.T) {
	b := Box(10, "hello")
	if b.Kind != KindBox || b.Width != 10 || b.Content != "hello" {
		t.Fatalf("Box() = %+v, want width 10 content hello", b)
	}

	g := NewGlue(5, 2.5, 1.5)
	if g.Kind != KindGlue || g.Width != 5 || g.Stretch != 2.5 || g.Shrink != 1.5 {
		t.Fatalf("NewGlue() = %+v", g)
	}

	p := Penalty(0, 50, true)
	if p.Kind != KindPenalty || p.Penalty != 50 || !p.Flagged {
		t.Fatalf("Penalty() = %+v", p)
	}
}

func TestItemIsForcedIsForbidden(t *testing.T) {
	forced := Penalty(0, math.Inf(-1), false)
	if !forced.IsForced() {
		t.Error("expected -Inf penalty to be forced")
	}
	if forced.IsForbidden() {
		t.Error("forced penalty should not also be forbidden")
	}

	forbidden := Penalty(0, math.Inf(1), false)
	if !forbidden.IsForbidden() {
		t.Error("expected +Inf penalty to be forbidden")
	}
	if forbidden.IsForced() {
		t.Error("forbidden penalty should not also be forced")
	}

	finite := Penalty(0, 50, false)
	if finite.IsForced() || finite.IsForbidden() {
		t.Error("finite penalty should be neither forced nor forbidden")
	}
}

// ═══════════════════════════════════════════════════════════════
//  Stream Validation Tests
// ═══════════════════════════════════════════════════════════════

func terminatorTrio() Stream {
	return Stream{
		Penalty(0, posInf, false),
		NewGlue(0, posInf, 0),
		Penalty(0, negInf, false),
	}
}

func TestStreamValidateOK(t *testing.T) {
	s := append(Stream{Box(10, "foo")}, terminatorTrio()...)
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestStreamValidateMissingTrio(t *testing.T) {
	s := Stream{Box(10, "foo")}
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want InvariantViolationError")
	} else if _, ok := err.(*InvariantViolationError); !ok {
		t.Fatalf("Validate() error type = %T, want *InvariantViolationError", err)
	}
}

func TestStreamValidateWrongTrioShape(t *testing.T) {
	tests := []struct {
		name   string
		stream Stream
	}{
		{
			name: "missing forbidding penalty",
			stream: Stream{
				Box(10, "foo"),
				Penalty(0, 0, false),
				NewGlue(0, posInf, 0),
				Penalty(0, negInf, false),
			},
		},
		{
			name: "final glue not infinitely stretchy",
			stream: Stream{
				Box(10, "foo"),
				Penalty(0, posInf, false),
				NewGlue(0, 10, 0),
				Penalty(0, negInf, false),
			},
		},
		{
			name: "final penalty not forced",
			stream: Stream{
				Box(10, "foo"),
				Penalty(0, posInf, false),
				NewGlue(0, posInf, 0),
				Penalty(0, 0, false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.stream.Validate(); err == nil {
				t.Fatal("Validate() = nil, want InvariantViolationError")
			}
		})
	}
}

func TestLegalBreakpoint(t *testing.T) {
	s := Stream{
		Box(10, "foo"),               // 0
		NewGlue(5, 2, 1),              // 1: legal, preceded by Box
		Box(10, "bar"),               // 2
		Penalty(0, 0, true),          // 3: legal, finite
		Box(5, "-"),                  // 4
		Penalty(0, posInf, false),    // 5: not legal, forbidden
	}

	want := map[int]bool{0: false, 1: true, 2: false, 3: true, 4: false, 5: false}
	for i, expect := range want {
		if got := legalBreakpoint(s, i); got != expect {
			t.Errorf("legalBreakpoint(s, %d) = %v, want %v", i, got, expect)
		}
	}
}
