package knuthplass

import (
	"strings"

	"github.com/SCKelemen/unicode/uax29"
)

// Hyphenation using Liang's Algorithm
//
// LiangHyphenationOracle implements Frank Liang's pattern-matching
// hyphenation algorithm (1983), as used by TeX, behind this package's
// HyphenationOracle interface.
//
// Reference: "Word Hy-phen-a-tion by Com-put-er" by Franklin Mark Liang
// https://tug.org/docs/liang/

// compiledPattern is a hyphenation pattern after its digit/letter
// encoding has been parsed apart: letters is the literal substring to
// match, and weights[j] is the priority that applies at the gap just
// before letters[j] (weights has len(letters)+1 entries, one past the
// last letter too).
type compiledPattern struct {
	letters string
	weights []int
}

// LiangHyphenationOracle provides hyphenation patterns for a language.
// Patterns are compiled once at construction and indexed by their
// leading letter, so Hyphenate only tests the patterns that could
// possibly match at a given offset instead of rescanning the whole
// table for every word.
type LiangHyphenationOracle struct {
	byFirstLetter map[byte][]compiledPattern
	minLeft       int // minimum characters on left
	minRight      int // minimum characters on right
}

// NewEnglishHyphenationOracle creates a HyphenationOracle with a subset
// of English TeX hyphenation patterns. For production use, load full
// pattern files from https://github.com/hyphenation/tex-hyphen.
func NewEnglishHyphenationOracle() *LiangHyphenationOracle {
	return &LiangHyphenationOracle{
		byFirstLetter: indexPatterns(englishHyphenationPatterns()),
		minLeft:       2,
		minRight:      3,
	}
}

// englishHyphenationPatterns returns a subset of English hyphenation
// patterns. Pattern format: letters with numbers indicating break
// priority; odd numbers allow breaks, even numbers prevent them.
func englishHyphenationPatterns() []string {
	return []string{
		".anti5", ".co4me", ".co4op", ".dis3", ".ex1", ".inter3",
		".multi3", ".non1", ".post3", ".pre3", ".pro3", ".re3",
		".semi3", ".sub3", ".super5", ".trans3", ".un1", ".under3",

		"5able.", "5ible.", "5ing.", "5tion.", "5sion.", "5ness.",
		"5ment.", "5ful.", "5less.", "5ous.", "5ive.", "3ence.",
		"3ance.", "3ity.", "3ency.", "3ancy.", "5er.", "5est.", "5ed.",

		"1ba", "1be", "1bi", "1bo", "1bu",
		"1ca", "1ce", "1ci", "1co", "1cu",
		"1da", "1de", "1di", "1do", "1du",
		"1ga", "1ge", "1gi", "1go", "1gu",
		"1la", "1le", "1li", "1lo", "1lu",
		"1ma", "1me", "1mi", "1mo", "1mu",
		"1na", "1ne", "1ni", "1no", "1nu",
		"1pa", "1pe", "1pi", "1po", "1pu",
		"1ra", "1re", "1ri", "1ro", "1ru",
		"1sa", "1se", "1si", "1so", "1su",
		"1ta", "1te", "1ti", "1to", "1tu",
		"1va", "1ve", "1vi", "1vo", "1vu",

		"2bb", "2cc", "2dd", "2ff", "2gg",
		"2ll", "2mm", "2nn", "2pp", "2rr", "2ss", "2tt",

		"ta1ble", "rec1ord", "pre1sent", "ex1am", "exam1ple",
		"con1test", "pro1ject", "in1for", "com1put", "al1go",
		"hyph1en", "pat1tern",
	}
}

// compilePattern splits a raw pattern ("ex1am") into its letters
// ("exam") and a weight array where weights[j] is the digit that
// preceded letters[j] in the source (0 if none was written).
func compilePattern(raw string) compiledPattern {
	var letters strings.Builder
	weights := []int{0}
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch >= '0' && ch <= '9' {
			weights[len(weights)-1] = int(ch - '0')
			continue
		}
		letters.WriteByte(ch)
		weights = append(weights, 0)
	}
	return compiledPattern{letters: letters.String(), weights: weights}
}

// indexPatterns compiles every raw pattern and buckets it by its first
// letter, so a scan over a word only consults patterns that could
// possibly start matching at the current offset.
func indexPatterns(raw []string) map[byte][]compiledPattern {
	index := make(map[byte][]compiledPattern)
	for _, r := range raw {
		p := compilePattern(r)
		if p.letters == "" {
			continue
		}
		key := p.letters[0]
		index[key] = append(index[key], p)
	}
	return index
}

// splitPoints returns byte indices into word where hyphenation is
// allowed, using Liang's priority-array algorithm: every compiled
// pattern matching at a given offset raises the priority of each gap
// it covers to the maximum of its own weight and whatever is already
// recorded there; an odd final priority marks a legal break.
func (h *LiangHyphenationOracle) splitPoints(word string) []int {
	if len(word) < h.minLeft+h.minRight {
		return nil
	}

	normalized := "." + strings.ToLower(word) + "."
	priorities := make([]int, len(normalized)+1)

	for i := 0; i < len(normalized); i++ {
		for _, p := range h.byFirstLetter[normalized[i]] {
			end := i + len(p.letters)
			if end > len(normalized) || normalized[i:end] != p.letters {
				continue
			}
			for j, w := range p.weights {
				if w > priorities[i+j] {
					priorities[i+j] = w
				}
			}
		}
	}

	var points []int
	for i := h.minLeft; i <= len(word)-h.minRight; i++ {
		if priorities[i+1]%2 == 1 {
			points = append(points, i)
		}
	}
	return points
}

// Hyphenate implements HyphenationOracle: it splits word at every Liang
// break point into syllables. If no break point is found, it returns the
// word unsplit, matching IdentityHyphenationOracle's contract.
func (h *LiangHyphenationOracle) Hyphenate(word string) ([]string, error) {
	points := h.splitPoints(word)
	if len(points) == 0 {
		return []string{word}, nil
	}

	syllables := make([]string, 0, len(points)+1)
	last := 0
	for _, p := range points {
		syllables = append(syllables, word[last:p])
		last = p
	}
	syllables = append(syllables, word[last:])

	if joined := strings.Join(syllables, ""); joined != word {
		return nil, &TokenizationError{Word: word, Reason: "hyphenation split does not reconstitute the word"}
	}
	for _, s := range syllables {
		if s == "" {
			return nil, &TokenizationError{Word: word, Reason: "hyphenation produced an empty syllable"}
		}
	}
	return syllables, nil
}

// validateHyphenation checks the HyphenationOracle contract:
// concatenation of the returned syllables, compared grapheme cluster by
// grapheme cluster, must reproduce the original word.
func validateHyphenation(word string, syllables []string) error {
	if len(syllables) == 0 {
		return &TokenizationError{Word: word, Reason: "hyphenation oracle returned no syllables"}
	}
	joined := strings.Join(syllables, "")
	if len(uax29.Graphemes(joined)) != len(uax29.Graphemes(word)) || joined != word {
		return &TokenizationError{Word: word, Reason: "hyphenation syllables do not reconstitute the word"}
	}
	for _, s := range syllables {
		if s == "" {
			return &TokenizationError{Word: word, Reason: "hyphenation produced an empty syllable"}
		}
	}
	return nil
}
