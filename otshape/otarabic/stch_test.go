package otarabic

import (
	"errors"
	"testing"

	"github.com/npillmayer/arabshape/ot"
	"github.com/npillmayer/arabshape/otshape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	gidFixed     ot.GlyphIndex = 1
	gidRepeating ot.GlyphIndex = 2
)

// widthFont has stretch pieces of 200 (fixed) and 150 (repeating) units.
// All other glyphs are 250 units wide.
type widthFont struct{}

func (widthFont) GlyphHAdvance(gid ot.GlyphIndex) int32 {
	switch gid {
	case gidFixed:
		return 200
	case gidRepeating:
		return 150
	}
	return 250
}

// stretchBuffer holds a word of four letters, 1000 units wide, followed by
// a fixed and a repeating stretch piece.
func stretchBuffer(t *testing.T, maxLen int) *otshape.Buffer {
	t.Helper()
	return stretchText(t, maxLen, []rune{0x0628, 0x0628, 0x0628, 0x0628, 0x070F, 0x070F})
}

// stretchText builds a buffer from text, where every pair of U+070F is
// turned into a fixed piece followed by a repeating piece of one cluster.
func stretchText(t *testing.T, maxLen int, text []rune) *otshape.Buffer {
	t.Helper()
	buf := otshape.NewBuffer(otshape.BufferOptions{MaxLen: maxLen})
	if err := buf.AddRunes(text, 0); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < buf.Len(); i++ {
		if buf.Info[i].Codepoint == 0x070F && i+1 < buf.Len() && buf.Info[i+1].Codepoint == 0x070F {
			buf.Info[i].Glyph, buf.Info[i+1].Glyph = gidFixed, gidRepeating
			buf.Info[i+1].Cluster = buf.Info[i].Cluster
			setAction(&buf.Info[i], StchFixed)
			setAction(&buf.Info[i+1], StchRepeating)
			i++
		}
	}
	for i := range buf.Info {
		buf.Pos[i].XAdvance = widthFont{}.GlyphHAdvance(buf.Info[i].Glyph)
	}
	buf.ScratchFlags |= ScratchArabicHasStch
	return buf
}

func TestMeasureStretchRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.arabic")
	defer teardown()
	//
	buf := stretchBuffer(t, 0)
	run := measureStretchRun(widthFont{}, buf, buf.Len())
	if run.start != 4 || run.context != 0 {
		t.Errorf("expected run [4,6) with context from 0, have %+v", run)
	}
	if run.nCopies != 5 || run.nRepeating != 1 {
		t.Errorf("expected 5 copies of 1 repeating piece, have %+v", run)
	}
	if run.overlap != 20 {
		t.Errorf("expected overlap of 20 units, have %d", run.overlap)
	}
}

func TestStretchRealization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.arabic")
	defer teardown()
	//
	buf := stretchBuffer(t, 0)
	if err := (Shaper{}).PostprocessGlyphs(nil, widthFont{}, buf); err != nil {
		t.Fatalf("stretching failed: %v", err)
	}
	if buf.Len() != 11 {
		t.Fatalf("expected 5 additional glyphs, buffer has %d", buf.Len())
	}
	if err := buf.CheckInvariants(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if buf.Info[i].Codepoint != 0x0628 || buf.Pos[i].XOffset != 0 {
			t.Errorf("word glyph %d changed: %v", i, buf.Info[i])
		}
	}
	if buf.Info[4].Glyph != gidFixed {
		t.Errorf("expected fixed piece at position 4, have %v", buf.Info[4])
	}
	for i := 5; i < 11; i++ {
		if buf.Info[i].Glyph != gidRepeating {
			t.Errorf("expected repeating piece at position %d, have %v", i, buf.Info[i])
		}
	}
	if buf.Pos[10].XOffset != -150 {
		t.Errorf("expected last copy at offset -150, have %d", buf.Pos[10].XOffset)
	}
	for i := 5; i < 10; i++ {
		if step := buf.Pos[i+1].XOffset - buf.Pos[i].XOffset; step != 130 {
			t.Errorf("expected copies 130 units apart, %d and %d are %d apart", i, i+1, step)
		}
	}
	if buf.Pos[4].XOffset != buf.Pos[5].XOffset-200 {
		t.Errorf("expected fixed piece one width beyond the copies, have %d", buf.Pos[4].XOffset)
	}
	for i := 1; i < 4; i++ {
		if buf.Info[i].Flags&otshape.GlyphUnsafeToBreak == 0 {
			t.Errorf("glyph %d of stretched word must be unsafe to break", i)
		}
	}
}

func TestStretchRealizationTwoRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.arabic")
	defer teardown()
	//
	buf := stretchText(t, 0, []rune{
		0x0628, 0x0628, 0x0628, 0x0628, 0x070F, 0x070F, ' ',
		0x0628, 0x0628, 0x0628, 0x0628, 0x070F, 0x070F,
	})
	if err := (Shaper{}).PostprocessGlyphs(nil, widthFont{}, buf); err != nil {
		t.Fatalf("stretching failed: %v", err)
	}
	if buf.Len() != 23 {
		t.Fatalf("expected 5 additional glyphs per run, buffer has %d", buf.Len())
	}
	if err := buf.CheckInvariants(); err != nil {
		t.Fatal(err)
	}
	for _, word := range []int{0, 12} {
		for i := word; i < word+4; i++ {
			if buf.Info[i].Codepoint != 0x0628 || buf.Pos[i].XOffset != 0 {
				t.Errorf("word glyph %d changed: %v", i, buf.Info[i])
			}
		}
	}
	if buf.Info[11].Codepoint != ' ' || buf.Pos[11].XOffset != 0 {
		t.Errorf("expected unchanged space at position 11, have %v", buf.Info[11])
	}
	for _, run := range []int{4, 16} {
		if buf.Info[run].Glyph != gidFixed || buf.Pos[run].XOffset != -1000 {
			t.Errorf("expected fixed piece at %d with offset -1000, have %v at %d",
				run, buf.Info[run], buf.Pos[run].XOffset)
		}
		for k := 0; k < 6; k++ {
			i := run + 1 + k
			want := int32(-800 + 130*k)
			if buf.Info[i].Glyph != gidRepeating || buf.Pos[i].XOffset != want {
				t.Errorf("expected repeating piece at %d with offset %d, have %v at %d",
					i, want, buf.Info[i], buf.Pos[i].XOffset)
			}
		}
	}
}

func TestStretchContextStopsAtFormatCharacter(t *testing.T) {
	buf := stretchText(t, 0, []rune{0x1BCA0, 0x0628, 0x0628, 0x0628, 0x0628, 0x070F, 0x070F})
	run := measureStretchRun(widthFont{}, buf, buf.Len())
	if run.start != 5 || run.context != 1 {
		t.Errorf("expected run [5,7) with context from 1, have %+v", run)
	}
	if run.nCopies != 5 {
		t.Errorf("expected 5 copies, have %d", run.nCopies)
	}
}

func TestStretchRealizationOverflow(t *testing.T) {
	buf := stretchBuffer(t, 8)
	before := append([]otshape.GlyphInfo(nil), buf.Info...)
	err := (Shaper{}).PostprocessGlyphs(nil, widthFont{}, buf)
	if !errors.Is(err, otshape.ErrBufferOverflow) {
		t.Fatalf("expected buffer overflow, have %v", err)
	}
	if buf.Len() != len(before) {
		t.Fatalf("buffer length changed to %d", buf.Len())
	}
	for i := range before {
		if buf.Info[i] != before[i] || buf.Pos[i].XOffset != 0 {
			t.Errorf("glyph %d changed after failed stretching", i)
		}
	}
}

func TestStretchWithoutRoom(t *testing.T) {
	buf := stretchBuffer(t, 0)
	for i := 0; i < 4; i++ {
		buf.Pos[i].XAdvance = 50 // word narrower than the pieces
	}
	if err := (Shaper{}).PostprocessGlyphs(nil, widthFont{}, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 6 {
		t.Errorf("expected no copies for a narrow word, have %d glyphs", buf.Len())
	}
}

func TestNoStretchFlag(t *testing.T) {
	buf := stretchBuffer(t, 0)
	buf.ScratchFlags &^= ScratchArabicHasStch
	if err := (Shaper{}).PostprocessGlyphs(nil, widthFont{}, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 6 || buf.Pos[5].XOffset != 0 {
		t.Errorf("buffer without stretch flag must be left alone")
	}
}
