package knuthplass

import "math"

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Kind discriminates the three item variants that make up an item stream.
type Kind int

const (
	// KindBox is an unbreakable run of glyphs.
	KindBox Kind = iota
	// KindGlue is flexible whitespace.
	KindGlue
	// KindPenalty is a discretionary break cost.
	KindPenalty
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindGlue:
		return "glue"
	case KindPenalty:
		return "penalty"
	default:
		return "unknown"
	}
}

// Item is a tagged Box/Glue/Penalty value. All three variants are kept on
// one struct (compact tag + payload) rather than as an interface
// hierarchy, per the closed, three-member sum this package works over.
type Item struct {
	Kind Kind

	// Width is shared by all three variants.
	Width float64

	// Box-only.
	Content string

	// Glue-only.
	Stretch float64
	Shrink  float64

	// Penalty-only. Penalty may be +Inf (forbidden), -Inf (forced), or
	// any finite real.
	Penalty float64
	Flagged bool
}

// Box returns an unbreakable run of glyphs with the given width.
func Box(width float64, content string) Item {
	return Item{Kind: KindBox, Width: width, Content: content}
}

// NewGlue returns flexible whitespace.
func NewGlue(width, stretch, shrink float64) Item {
	return Item{Kind: KindGlue, Width: width, Stretch: stretch, Shrink: shrink}
}

// Penalty returns a discretionary break point.
func Penalty(width, penalty float64, flagged bool) Item {
	return Item{Kind: KindPenalty, Width: width, Penalty: penalty, Flagged: flagged}
}

// IsForced reports whether the item is a Penalty with value -Inf.
func (it Item) IsForced() bool {
	return it.Kind == KindPenalty && math.IsInf(it.Penalty, -1)
}

// IsForbidden reports whether the item is a Penalty with value +Inf.
func (it Item) IsForbidden() bool {
	return it.Kind == KindPenalty && math.IsInf(it.Penalty, 1)
}

// Stream is an ordered sequence of items.
type Stream []Item

// Validate checks the terminator-trio invariant: the stream must end with
// Penalty(+Inf), Glue(0, +Inf, 0), Penalty(-Inf, 0). It returns an
// InvariantViolationError if the invariant does not hold, or if any item
// carries an unrecognized Kind.
func (s Stream) Validate() error {
	for i, it := range s {
		switch it.Kind {
		case KindBox, KindGlue, KindPenalty:
		default:
			return &InvariantViolationError{Detail: "unknown item kind at position", Position: i}
		}
	}
	if len(s) < 3 {
		return &InvariantViolationError{Detail: "stream shorter than the mandatory terminator trio", Position: len(s)}
	}
	p1, g, p2 := s[len(s)-3], s[len(s)-2], s[len(s)-1]
	if p1.Kind != KindPenalty || !math.IsInf(p1.Penalty, 1) {
		return &InvariantViolationError{Detail: "stream does not end with Penalty(+Inf)", Position: len(s) - 3}
	}
	if g.Kind != KindGlue || g.Width != 0 || !math.IsInf(g.Stretch, 1) || g.Shrink != 0 {
		return &InvariantViolationError{Detail: "stream does not end with Glue(0, +Inf, 0)", Position: len(s) - 2}
	}
	if p2.Kind != KindPenalty || !math.IsInf(p2.Penalty, -1) || p2.Width != 0 {
		return &InvariantViolationError{Detail: "stream does not end with Penalty(-Inf, 0)", Position: len(s) - 1}
	}
	return nil
}

// legalBreakpoint reports whether position i in the stream is a legal
// breakpoint: Glue immediately preceded by a Box, or any Penalty whose
// value is less than +Inf.
func legalBreakpoint(s Stream, i int) bool {
	it := s[i]
	switch it.Kind {
	case KindGlue:
		return i > 0 && s[i-1].Kind == KindBox
	case KindPenalty:
		return !it.IsForbidden()
	default:
		return false
	}
}
