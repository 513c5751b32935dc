package otarabic

import (
	"github.com/npillmayer/arabshape/otshape"
)

// ScratchArabicHasStch is set on a buffer when it contains glyphs tagged
// for stretching.
const ScratchArabicHasStch = otshape.ScratchEngine0

// recordStch is the pause after 'stch'. The feature decomposes a glyph into
// a multiplied sequence of fixed and repeating pieces; pieces at odd
// component positions are the repeating ones.
func recordStch(ctx otshape.PauseContext) error {
	if !planData(ctx.Plan()).hasStch {
		return nil
	}
	buf := ctx.Buffer()
	for i := range buf.Info {
		if !buf.Info[i].IsMultiplied() {
			continue
		}
		if buf.Info[i].LigComp%2 != 0 {
			setAction(&buf.Info[i], StchRepeating)
		} else {
			setAction(&buf.Info[i], StchFixed)
		}
		buf.ScratchFlags |= ScratchArabicHasStch
	}
	return nil
}

// stretchRun is a maximal run of stretch-tagged glyphs, [start, end), and
// the word context [context, start) it has to fill.
type stretchRun struct {
	context, start, end int
	nCopies             int   // additional copies per repeating piece
	nRepeating          int   // number of repeating pieces
	overlap             int32 // extra overlap between repeated copies
}

// measureStretchRun collects the run of stretch-tagged glyphs ending at
// position end and computes how many copies of its repeating pieces fill
// the width of the preceding word.
func measureStretchRun(font otshape.Font, buf *otshape.Buffer, end int) stretchRun {
	info, pos := buf.Info, buf.Pos
	run := stretchRun{end: end}
	var wFixed, wRepeating, wTotal int32
	i := end
	for i > 0 && ActionOf(info[i-1]).IsStretch() {
		i--
		width := font.GlyphHAdvance(info[i].Glyph)
		if ActionOf(info[i]) == StchFixed {
			wFixed += width
		} else {
			wRepeating += width
			run.nRepeating++
		}
	}
	run.start = i
	run.context = i
	for run.context > 0 && !ActionOf(info[run.context-1]).IsStretch() &&
		(info[run.context-1].IsDefaultIgnorable() || info[run.context-1].GeneralCategory.IsWord()) {
		run.context--
		wTotal += pos[run.context].XAdvance
	}
	wRemaining := wTotal - wFixed
	if wRepeating > 0 && wRemaining > wRepeating {
		run.nCopies = int(wRemaining/wRepeating) - 1
	}
	shortfall := wRemaining - wRepeating*int32(run.nCopies+1)
	if shortfall > 0 && run.nRepeating > 0 {
		run.nCopies++
		excess := int32(run.nCopies+1)*wRepeating - wRemaining
		if excess > 0 {
			run.overlap = excess / int32(run.nCopies*run.nRepeating)
		}
	}
	tracer().Debugf("stretch run [%d,%d) in context from %d: width %d, fixed %d, repeating %d, %d copies, overlap %d",
		run.start, run.end, run.context, wTotal, wFixed, wRepeating, run.nCopies, run.overlap)
	return run
}

// PostprocessGlyphs realizes stretching. Every run of stretch-tagged glyphs
// is widened to the width of the word preceding it (in logical order) by
// repeating its repeating pieces. Copies are shifted left by x-offsets.
//
// The buffer is grown once; if growing fails, the error is returned and the
// buffer is left unchanged.
func (Shaper) PostprocessGlyphs(plan *otshape.Plan, font otshape.Font, buf *otshape.Buffer) error {
	if buf.ScratchFlags&ScratchArabicHasStch == 0 {
		return nil
	}
	// Measure.
	count := buf.Len()
	extra := 0
	for i := count; i > 0; i-- {
		if !ActionOf(buf.Info[i-1]).IsStretch() {
			continue
		}
		run := measureStretchRun(font, buf, i)
		extra += run.nCopies * run.nRepeating
		i = run.start + 1
	}
	newLen := count + extra
	if err := buf.Ensure(newLen); err != nil {
		return err
	}
	buf.SetLen(newLen)
	// Cut: copy from the end, writing replicas of repeating pieces.
	info, pos := buf.Info, buf.Pos
	j := newLen
	for i := count; i > 0; i-- {
		if !ActionOf(info[i-1]).IsStretch() {
			j--
			info[j] = info[i-1]
			pos[j] = pos[i-1]
			continue
		}
		run := measureStretchRun(font, buf, i)
		buf.UnsafeToBreak(run.context, run.end)
		var xOffset int32
		for k := run.end; k > run.start; k-- {
			width := font.GlyphHAdvance(info[k-1].Glyph)
			repeat := 1
			if ActionOf(info[k-1]) == StchRepeating {
				repeat += run.nCopies
			}
			for n := 0; n < repeat; n++ {
				xOffset -= width
				if n > 0 {
					xOffset += run.overlap
				}
				pos[k-1].XOffset = xOffset
				j--
				info[j] = info[k-1]
				pos[j] = pos[k-1]
			}
		}
		i = run.start + 1
	}
	if j != 0 {
		panic("stretch realization did not fill the buffer")
	}
	return nil
}
