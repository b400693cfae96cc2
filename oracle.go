package knuthplass

import "github.com/SCKelemen/units"

// WidthOracle measures the width of a string in the units the caller's
// target line width is expressed in. Implementations must be
// deterministic for a given font configuration; a negative result is
// reported to the tokenizer's caller as a TokenizationError.
//
// The width oracle is an external collaborator by design: this
// package never decides how glyphs are shaped or measured, only how
// measured runs combine into breakpoints.
type WidthOracle interface {
	Width(s string) (float64, error)
}

// WidthOracleFunc adapts a plain function to WidthOracle.
type WidthOracleFunc func(s string) (float64, error)

// Width implements WidthOracle.
func (f WidthOracleFunc) Width(s string) (float64, error) { return f(s) }

// HyphenationOracle splits a word into syllables for automatic
// hyphenation. Concatenating the returned syllables must reproduce the
// input word exactly; a violation is reported as a TokenizationError.
type HyphenationOracle interface {
	Hyphenate(word string) ([]string, error)
}

// HyphenationOracleFunc adapts a plain function to HyphenationOracle.
type HyphenationOracleFunc func(word string) ([]string, error)

// Hyphenate implements HyphenationOracle.
func (f HyphenationOracleFunc) Hyphenate(word string) ([]string, error) { return f(word) }

// IdentityHyphenationOracle is the default hyphenation oracle: it never
// splits a word.
type IdentityHyphenationOracle struct{}

// Hyphenate always returns the word unsplit.
func (IdentityHyphenationOracle) Hyphenate(word string) ([]string, error) {
	return []string{word}, nil
}

// RuneWidthOracle adapts a per-rune measure function into a
// string-accepting WidthOracle by summing per-rune advances. This is
// the reference WidthOracle shipped with the package; callers backed by
// real font metrics (kerning, ligatures, shaping) should supply their
// own implementation instead.
type RuneWidthOracle struct {
	// Measure returns the advance width of a single rune.
	Measure func(r rune) float64
}

// NewRuneWidthOracle builds a RuneWidthOracle over a fixed per-rune
// advance table, such as a monospace cell width or a font's glyph
// advance lookup.
func NewRuneWidthOracle(measure func(r rune) float64) *RuneWidthOracle {
	return &RuneWidthOracle{Measure: measure}
}

// Width sums the advance of every rune in s.
func (o *RuneWidthOracle) Width(s string) (float64, error) {
	var total float64
	for _, r := range s {
		total += o.Measure(r)
	}
	return total, nil
}

// MonospaceWidthOracle returns a RuneWidthOracle where every rune has the
// given cell width, expressed as a units.Length for parity with the
// CSS-flavored length quantities elsewhere in this family of packages.
func MonospaceWidthOracle(cell units.Length) *RuneWidthOracle {
	w := cell.Raw()
	return NewRuneWidthOracle(func(rune) float64 { return w })
}
