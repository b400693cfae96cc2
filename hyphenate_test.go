package knuthplass

import "testing"

func TestLiangHyphenationOracleSplitsKnownWord(t *testing.T) {
	h := NewEnglishHyphenationOracle()
	syllables, err := h.Hyphenate("computer")
	if err != nil {
		t.Fatalf("Hyphenate() error = %v", err)
	}
	if len(syllables) == 0 {
		t.Fatal("Hyphenate() returned no syllables")
	}
	if got := joinSyllables(syllables); got != "computer" {
		t.Errorf("joined syllables = %q, want %q", got, "computer")
	}
}

func TestLiangHyphenationOracleShortWordUnsplit(t *testing.T) {
	h := NewEnglishHyphenationOracle()
	syllables, err := h.Hyphenate("to")
	if err != nil {
		t.Fatalf("Hyphenate() error = %v", err)
	}
	if len(syllables) != 1 || syllables[0] != "to" {
		t.Errorf("Hyphenate(to) = %v, want unsplit [to]", syllables)
	}
}

func TestLiangHyphenationOracleAlwaysReconstitutes(t *testing.T) {
	h := NewEnglishHyphenationOracle()
	words := []string{
		"hyphenation", "algorithm", "pattern", "example", "contest",
		"project", "information", "computer", "presentation", "table",
	}
	for _, w := range words {
		syllables, err := h.Hyphenate(w)
		if err != nil {
			t.Fatalf("Hyphenate(%q) error = %v", w, err)
		}
		if got := joinSyllables(syllables); got != w {
			t.Errorf("Hyphenate(%q) joined = %q, want %q", w, got, w)
		}
		for _, s := range syllables {
			if s == "" {
				t.Errorf("Hyphenate(%q) produced an empty syllable in %v", w, syllables)
			}
		}
	}
}

func TestLiangHyphenationOracleRespectsMinLeftRight(t *testing.T) {
	h := NewEnglishHyphenationOracle()
	syllables, err := h.Hyphenate("example")
	if err != nil {
		t.Fatalf("Hyphenate() error = %v", err)
	}
	if len(syllables[0]) < h.minLeft {
		t.Errorf("first syllable %q shorter than minLeft=%d", syllables[0], h.minLeft)
	}
	if len(syllables[len(syllables)-1]) < h.minRight {
		t.Errorf("last syllable %q shorter than minRight=%d", syllables[len(syllables)-1], h.minRight)
	}
}

func joinSyllables(syllables []string) string {
	out := ""
	for _, s := range syllables {
		out += s
	}
	return out
}

// ═══════════════════════════════════════════════════════════════
//  validateHyphenation
// ═══════════════════════════════════════════════════════════════

func TestValidateHyphenationOK(t *testing.T) {
	if err := validateHyphenation("testing", []string{"test", "ing"}); err != nil {
		t.Errorf("validateHyphenation() = %v, want nil", err)
	}
}

func TestValidateHyphenationMismatch(t *testing.T) {
	if err := validateHyphenation("testing", []string{"test", "er"}); err == nil {
		t.Fatal("validateHyphenation() = nil, want TokenizationError")
	}
}

func TestValidateHyphenationEmptySyllable(t *testing.T) {
	if err := validateHyphenation("testing", []string{"testing", ""}); err == nil {
		t.Fatal("validateHyphenation() = nil, want TokenizationError")
	}
}

func TestValidateHyphenationNoSyllables(t *testing.T) {
	if err := validateHyphenation("testing", nil); err == nil {
		t.Fatal("validateHyphenation() = nil, want TokenizationError")
	}
}
