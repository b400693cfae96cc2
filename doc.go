// Package knuthplass computes optimal paragraph line breaks for
// justified typesetting using the Knuth-Plass total-fit algorithm.
//
// Unlike greedy (first-fit) line breaking, which fills each line as much
// as possible before moving to the next, Knuth-Plass considers every
// legal breakpoint in the paragraph simultaneously and chooses the set
// that minimizes the total "demerits" (badness) accumulated over all
// lines. This produces noticeably more even right margins and fewer
// orphaned short lines than greedy wrapping.
//
// Based on:
//   - Knuth & Plass (1981): "Breaking Paragraphs into Lines"
//     https://www.eprg.org/G53DOC/pdfs/knuth-plass-breaking.pdf
//
// # Quick Start
//
//	widths := knuthplass.NewRuneWidthOracle(func(r rune) float64 { return 1 })
//
//	stream, err := knuthplass.Paragraph(
//	    "The quick brown fox jumps over the lazy dog.",
//	    knuthplass.DefaultOptions(),
//	    widths,
//	    nil,
//	)
//	if err != nil {
//	    // handle *TokenizationError
//	}
//
//	lines, err := knuthplass.Lines(stream, knuthplass.DefaultOptimizerOptions(40))
//	if err != nil {
//	    // handle *NoFeasibleSolutionError
//	}
//
// # Scope
//
// This package owns the breakpoint optimizer and the paragraph
// tokenizer. It does not own glyph measurement (see WidthOracle),
// hyphenation dictionaries beyond the bundled Liang pattern set (see
// HyphenationOracle), or rendering the resulting lines: those are
// external collaborators by design.
package knuthplass
