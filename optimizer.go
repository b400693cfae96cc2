package knuthplass

import "math"

// Optimizer Configuration
//
// OptimizerOptions configures OptimumBreakpoints. Unlike Options (the
// tokenizer's configuration), the zero value is not directly usable:
// Width must be supplied and the penalty and Gamma fields have non-zero
// defaults, so callers should start from DefaultOptimizerOptions and
// override fields.
type OptimizerOptions struct {
	// Width is the target line width. Required, must be positive.
	Width float64

	// Threshold is the largest adjustment ratio a candidate line may
	// have to remain eligible; ratios below -1 are always rejected.
	// Default 5; OptimumBreakpoints replaces a non-positive value with 5.
	Threshold float64

	// FlaggedPenalty is added when a line both starts and ends at a
	// flagged penalty (hyphen-style break), discouraging consecutive
	// hyphenated lines. Default 3000.
	FlaggedPenalty float64

	// FitnessPenalty is added when adjacent lines' fitness classes
	// differ by more than one bucket. Default 100.
	FitnessPenalty float64

	// Gamma bounds dominance pruning: a fitness class's best candidate
	// is dropped if its demerits exceed the minimum of the round's
	// candidates by more than Gamma. Default +Inf (disabled).
	Gamma float64
}

// DefaultOptimizerOptions returns Knuth-Plass's classical defaults for a
// given target line width.
func DefaultOptimizerOptions(width float64) OptimizerOptions {
	return OptimizerOptions{
		Width:          width,
		Threshold:      5,
		FlaggedPenalty: 3000,
		FitnessPenalty: 100,
		Gamma:          posInf,
	}
}

// runningSums is the (total_width, total_stretch, total_shrink) triple
// tracked by the single forward sweep over the item stream.
type runningSums struct {
	width, stretch, shrink float64
}

// sweep precomputes, for every legal breakpoint position, the running
// sums as of that position (excluding the candidate glue's own
// contribution), plus the legality of every position.
func sweep(stream Stream) (legal []bool, sumsAt []runningSums) {
	legal = make([]bool, len(stream))
	sumsAt = make([]runningSums, len(stream))

	var running runningSums
	for i, it := range stream {
		legal[i] = legalBreakpoint(stream, i)
		if legal[i] {
			sumsAt[i] = running
		}
		switch it.Kind {
		case KindBox:
			running.width += it.Width
		case KindGlue:
			running.width += it.Width
			running.stretch += it.Stretch
			running.shrink += it.Shrink
		case KindPenalty:
			// Penalties never alter the running sums.
		}
	}
	return legal, sumsAt
}

// afterSnapshot computes the "after(B)" running-sum snapshot used as a
// new active node's own totals: sumsAt[b] advanced past the break item
// b itself and any glue/penalty after it, up to (but not including) the
// next Box, also stopping at a forced penalty after b. Starting at b
// folds the glue a line breaks at into the snapshot, so that glue counts
// toward neither the line it ends nor the next one; a forced penalty at
// b itself (the final break) is passed over.
func afterSnapshot(stream Stream, sumsAt []runningSums, b int) runningSums {
	s := sumsAt[b]
	for j := b; j < len(stream); j++ {
		it := stream[j]
		if it.Kind == KindBox {
			break
		}
		if it.Kind == KindPenalty && it.IsForced() {
			if j == b {
				continue
			}
			break
		}
		if it.Kind == KindGlue {
			s.width += it.Width
			s.stretch += it.Stretch
			s.shrink += it.Shrink
		}
	}
	return s
}

type candidate struct {
	have     bool
	demerits float64
	from     nodeID
	ratio    float64
}

// OptimumBreakpoints runs the Knuth-Plass total-fit dynamic program over
// stream and returns the optimal chain of breakpoints. The first
// element is always the sentinel (Position -1, Line 0); the last is the
// stream's forced final break.
//
// Example:
//
//	stream, _ := knuthplass.Paragraph("this is a test.", knuthplass.DefaultOptions(), widths, nil)
//	chain, err := knuthplass.OptimumBreakpoints(stream, knuthplass.DefaultOptimizerOptions(60))
func OptimumBreakpoints(stream Stream, opts OptimizerOptions) ([]*Breakpoint, error) {
	if err := stream.Validate(); err != nil {
		return nil, err
	}
	if opts.Threshold <= 0 {
		opts.Threshold = 5
	}

	legal, sumsAt := sweep(stream)
	a := newArena()
	active := []nodeID{a.sentinel()}

	for b, it := range stream {
		if !legal[b] {
			continue
		}
		if len(active) == 0 {
			return nil, &NoFeasibleSolutionError{Position: b, Threshold: opts.Threshold}
		}

		forced := it.Kind == KindPenalty && it.IsForced()
		lastPosition := len(stream) - 1

		newActive := make([]nodeID, 0, len(active)+4)
		i := 0
		for i < len(active) {
			groupLine := a.at(active[i]).line
			var best [4]candidate

			j := i
			for j < len(active) && a.at(active[j]).line == groupLine {
				aID := active[j]
				node := a.at(aID)

				lineWidth := sumsAt[b].width - node.totalWidth
				if it.Kind == KindPenalty {
					lineWidth += it.Width
				}
				r := adjustmentRatio(lineWidth, sumsAt[b].stretch-node.totalStretch, sumsAt[b].shrink-node.totalShrink, opts.Width)

				deactivate := r < -1 || (forced && node.position != lastPosition)

				if r >= -1 && r <= opts.Threshold {
					d := lineDemerits(r, it)
					if it.Kind == KindPenalty && it.Flagged && node.position >= 0 {
						if prev := stream[node.position]; prev.Kind == KindPenalty && prev.Flagged {
							d += opts.FlaggedPenalty
						}
					}
					cls := fitnessClass(r)
					if absInt(cls-node.fitnessClass) > 1 {
						d += opts.FitnessPenalty
					}
					total := d + node.totalDemerits
					if !best[cls].have || total < best[cls].demerits {
						best[cls] = candidate{have: true, demerits: total, from: aID, ratio: r}
					}
				}

				if !deactivate {
					newActive = append(newActive, aID)
				}
				j++
			}

			minDemerits := math.Inf(1)
			for _, c := range best {
				if c.have && c.demerits < minDemerits {
					minDemerits = c.demerits
				}
			}

			if !math.IsInf(minDemerits, 1) {
				snapshot := afterSnapshot(stream, sumsAt, b)
				for cls, c := range best {
					if !c.have {
						continue
					}
					if c.demerits > minDemerits+opts.Gamma {
						continue
					}
					id := a.alloc(activeNode{
						position:      b,
						line:          groupLine + 1,
						fitnessClass:  cls,
						totalWidth:    snapshot.width,
						totalStretch:  snapshot.stretch,
						totalShrink:   snapshot.shrink,
						totalDemerits: c.demerits,
						ratio:         c.ratio,
						previous:      c.from,
					})
					newActive = append(newActive, id)
				}
			}

			i = j
		}

		active = newActive
	}

	if len(active) == 0 {
		return nil, &NoFeasibleSolutionError{Position: len(stream) - 1, Threshold: opts.Threshold}
	}

	winner := active[0]
	for _, id := range active[1:] {
		n, w := a.at(id), a.at(winner)
		switch {
		case n.totalDemerits < w.totalDemerits:
			winner = id
		case n.totalDemerits == w.totalDemerits && n.line < w.line:
			winner = id
		case n.totalDemerits == w.totalDemerits && n.line == w.line && n.position < w.position:
			winner = id
		}
	}

	return reconstruct(a, stream, winner), nil
}

// reconstruct walks back-pointers from winner to the sentinel and
// reverses them into a forward chain, applying the penalty
// post-processing adjustment along the way.
func reconstruct(a *arena, stream Stream, winner nodeID) []*Breakpoint {
	var ids []nodeID
	for id := winner; id != noPrevious; id = a.at(id).previous {
		ids = append(ids, id)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	chain := make([]*Breakpoint, len(ids))
	var prev *Breakpoint
	for i, id := range ids {
		n := a.at(id)
		pos := n.position
		if pos >= 0 && pos < len(stream) && stream[pos].Kind == KindPenalty {
			pos++
		}
		bp := &Breakpoint{
			Position:      pos,
			Line:          n.line,
			FitnessClass:  n.fitnessClass,
			Ratio:         n.ratio,
			TotalDemerits: n.totalDemerits,
			Previous:      prev,
		}
		chain[i] = bp
		prev = bp
	}
	return chain
}

// Lines runs OptimumBreakpoints and slices stream into per-line item
// runs: the items of line k are stream[start : breakpoint[k].Position].
// After a glue break, start is breakpoint[k-1].Position+1, so the glue
// belongs to neither line; after a penalty break, whose Position already
// points one past the penalty, start is breakpoint[k-1].Position, so the
// penalty ends the earlier line. The final line includes the forced
// final penalty.
func Lines(stream Stream, opts OptimizerOptions) ([]LineResult, error) {
	chain, err := OptimumBreakpoints(stream, opts)
	if err != nil {
		return nil, err
	}

	result := make([]LineResult, 0, len(chain)-1)
	for k := 1; k < len(chain); k++ {
		start := chain[k-1].Position + 1
		if p := chain[k-1].Position; p > 0 && p <= len(stream) && stream[p-1].Kind == KindPenalty {
			// A penalty break's Position was already advanced past it.
			start = p
		}
		if start < 0 {
			start = 0
		}
		end := chain[k].Position
		if end > len(stream) {
			end = len(stream)
		}
		if start > end {
			start = end
		}
		result = append(result, LineResult{Items: stream[start:end], Breakpoint: chain[k]})
	}
	return result, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
