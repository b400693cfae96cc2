package knuthplass

import (
	"fmt"
	"strings"

	"github.com/SCKelemen/units"
)

// Options configures Paragraph. The zero value is usable: no indent, no
// automatic hyphenation, no abbreviation suppression, and the classical
// 1.5x sentence-ending glue multiplier (a zero SentenceSpaceFactor is
// treated as 1.5).
type Options struct {
	// Indent, if non-zero, is emitted as a leading Box so the
	// paragraph's first legal break follows real content.
	Indent units.Length

	// Hyphenate enables automatic hyphenation of the final,
	// explicit-hyphen-free syllable of each word via the supplied
	// HyphenationOracle.
	Hyphenate bool

	// Dictionary, if set, suppresses the sentence-ending glue bump
	// after a word ending in "." that is a known abbreviation.
	Dictionary *AbbreviationDictionary

	// SentenceSpaceFactor scales the width, stretch, and shrink of the
	// glue following a sentence-ending word. Default 1.5.
	SentenceSpaceFactor float64
}

// DefaultOptions returns the package's recommended defaults.
func DefaultOptions() Options {
	return Options{SentenceSpaceFactor: 1.5}
}

func (o Options) sentenceSpaceFactor() float64 {
	if o.SentenceSpaceFactor == 0 {
		return 1.5
	}
	return o.SentenceSpaceFactor
}

// Paragraph converts text into the item stream the optimizer consumes.
// widths is required; hyphenation may be nil, in which
// case IdentityHyphenationOracle is used (no automatic hyphenation is
// attempted regardless of opts.Hyphenate).
//
// Example:
//
//	widths := knuthplass.NewRuneWidthOracle(func(r rune) float64 { return 1 })
//	stream, err := knuthplass.Paragraph("this is a test.", knuthplass.DefaultOptions(), widths, nil)
func Paragraph(text string, opts Options, widths WidthOracle, hyphenation HyphenationOracle) (Stream, error) {
	if widths == nil {
		return nil, &TokenizationError{Reason: "width oracle is required"}
	}
	if hyphenation == nil {
		hyphenation = IdentityHyphenationOracle{}
	}

	var s Stream

	if !opts.Indent.IsZero() {
		w := opts.Indent.Raw()
		if w < 0 {
			return nil, &TokenizationError{Reason: "indent width is negative"}
		}
		s = append(s, Box(w, ""))
	}

	words := strings.Fields(text)

	for i, word := range words {
		boxes, err := tokenizeWord(word, opts, widths, hyphenation)
		if err != nil {
			return nil, err
		}
		s = append(s, boxes...)

		if i < len(words)-1 {
			glue, err := interWordGlue(word, opts, widths)
			if err != nil {
				return nil, err
			}
			s = append(s, glue)
		}
	}

	s = append(s, Penalty(0, posInf, false))
	s = append(s, NewGlue(0, posInf, 0))
	s = append(s, Penalty(0, negInf, false))

	return s, nil
}

// tokenizeWord handles explicit-hyphen syllables first,
// then optional automatic hyphenation of the final syllable.
func tokenizeWord(word string, opts Options, widths WidthOracle, hyphenation HyphenationOracle) (Stream, error) {
	syllables := strings.Split(word, "-")

	var out Stream
	for i, syl := range syllables {
		if syl == "" {
			return nil, &TokenizationError{Word: word, Reason: "empty syllable around an explicit hyphen"}
		}
		last := i == len(syllables)-1
		if !last {
			content := syl + "-"
			w, err := boxWidth(widths, content)
			if err != nil {
				return nil, &TokenizationError{Word: word, Reason: err.Error(), Err: err}
			}
			out = append(out, Box(w, content))
			out = append(out, Penalty(0, 0, true))
			continue
		}

		final, err := tokenizeFinalSyllable(syl, word, opts, widths, hyphenation)
		if err != nil {
			return nil, err
		}
		out = append(out, final...)
	}
	return out, nil
}

// tokenizeFinalSyllable applies optional automatic hyphenation to a
// word's final, explicit-hyphen-free syllable.
func tokenizeFinalSyllable(syl, word string, opts Options, widths WidthOracle, hyphenation HyphenationOracle) (Stream, error) {
	if !opts.Hyphenate {
		w, err := boxWidth(widths, syl)
		if err != nil {
			return nil, &TokenizationError{Word: word, Reason: err.Error(), Err: err}
		}
		return Stream{Box(w, syl)}, nil
	}

	parts, err := hyphenation.Hyphenate(syl)
	if err != nil {
		return nil, &TokenizationError{Word: word, Reason: "hyphenation oracle failed", Err: err}
	}
	if err := validateHyphenation(syl, parts); err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		w, err := boxWidth(widths, parts[0])
		if err != nil {
			return nil, &TokenizationError{Word: word, Reason: err.Error(), Err: err}
		}
		return Stream{Box(w, parts[0])}, nil
	}

	hyphenWidth, err := boxWidth(widths, "-")
	if err != nil {
		return nil, &TokenizationError{Word: word, Reason: err.Error(), Err: err}
	}

	var out Stream
	for i, p := range parts {
		w, err := boxWidth(widths, p)
		if err != nil {
			return nil, &TokenizationError{Word: word, Reason: err.Error(), Err: err}
		}
		out = append(out, Box(w, p))
		if i < len(parts)-1 {
			out = append(out, Penalty(hyphenWidth, 0, true))
		}
	}
	return out, nil
}

// interWordGlue builds the glue between two words, including the sentence-ending
// extra-space rule.
func interWordGlue(precedingWord string, opts Options, widths WidthOracle) (Item, error) {
	spaceWidth, err := boxWidth(widths, " ")
	if err != nil {
		return Item{}, &TokenizationError{Reason: err.Error(), Err: err}
	}

	width, stretch, shrink := spaceWidth, spaceWidth/2, spaceWidth/3

	if endsSentence(precedingWord) && !isSuppressedAbbreviation(precedingWord, opts.Dictionary) {
		factor := opts.sentenceSpaceFactor()
		width *= factor
		stretch *= factor
		shrink *= factor
	}

	return NewGlue(width, stretch, shrink), nil
}

func endsSentence(word string) bool {
	if word == "" {
		return false
	}
	switch word[len(word)-1] {
	case '.', '?', '!':
		return true
	default:
		return false
	}
}

func isSuppressedAbbreviation(word string, dict *AbbreviationDictionary) bool {
	if dict == nil {
		return false
	}
	return word[len(word)-1] == '.' && dict.IsAbbreviation(word)
}

func boxWidth(widths WidthOracle, s string) (float64, error) {
	w, err := widths.Width(s)
	if err != nil {
		return 0, err
	}
	if w < 0 {
		return 0, errNegativeWidth(s)
	}
	return w, nil
}

func errNegativeWidth(content string) error {
	return fmt.Errorf("width oracle returned a negative width for %q", content)
}
