package otquery

import (
	"fmt"
	"sync"

	"github.com/npillmayer/arabshape/ot"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTFont is a parsed OpenType font (TTF or OTF) together with the layout
// features it provides. It implements the font and feature-set views the
// shaping packages need.
//
// SFNTFont is safe for concurrent use.
type SFNTFont struct {
	Fontname string
	features ot.LayoutFeatures
	upem     sfnt.Units
	face     *sfnt.Font

	mu  sync.Mutex  // guards buf
	buf sfnt.Buffer // scratch buffer for package sfnt
}

// ParseFont parses an OpenType font from memory. The binary must not be
// changed after parsing.
func ParseFont(binary []byte) (*SFNTFont, error) {
	face, err := sfnt.Parse(binary)
	if err != nil {
		return nil, err
	}
	features, err := ot.ReadLayoutFeatures(binary)
	if err != nil {
		return nil, err
	}
	f := &SFNTFont{
		face:     face,
		features: features,
		upem:     face.UnitsPerEm(),
	}
	if f.upem == 0 {
		return nil, fmt.Errorf("font has no units per em")
	}
	if f.Fontname, err = face.Name(&f.buf, sfnt.NameIDFull); err != nil {
		f.Fontname = "<unnamed>"
	}
	tracer().Debugf("parsed SFNT %s: %d glyphs, GSUB features %v", f.Fontname, face.NumGlyphs(), features.GSub)
	return f, nil
}

// Features returns the feature tags of the font's GSUB and GPOS tables.
func (f *SFNTFont) Features() ot.LayoutFeatures {
	return f.features
}

// Has reports whether the font provides a layout feature.
func (f *SFNTFont) Has(tag ot.Tag) bool {
	return f.features.Has(tag)
}

// GlyphIndex returns the glyph index for a code-point.
// If the code-point cannot be found, 0 (.notdef) is returned.
func (f *SFNTFont) GlyphIndex(r rune) ot.GlyphIndex {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, err := f.face.GlyphIndex(&f.buf, r)
	if err != nil {
		tracer().Debugf("cmap lookup of %#U: %v", r, err)
		return ot.NOTDEF
	}
	return ot.GlyphIndex(gid)
}

// GlyphHAdvance returns the horizontal advance of a glyph in font units.
// Glyphs unknown to the font have advance 0.
func (f *SFNTFont) GlyphHAdvance(gid ot.GlyphIndex) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.face.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.unscaled(), font.HintingNone)
	if err != nil {
		tracer().Debugf("advance of glyph %d: %v", gid, err)
		return 0
	}
	return int32(adv.Round())
}

// GlyphMetrics retrieves metrics for a glyph, in font units.
func (f *SFNTFont) GlyphMetrics(gid ot.GlyphIndex) (GlyphMetricsInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bounds, adv, err := f.face.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), f.unscaled(), font.HintingNone)
	if err != nil {
		return GlyphMetricsInfo{}, err
	}
	// package sfnt has y pointing down
	metrics := GlyphMetricsInfo{
		Advance: sfnt.Units(adv.Round()),
		BBox: BoundingBox{
			MinX: sfnt.Units(bounds.Min.X.Round()),
			MinY: sfnt.Units(-bounds.Max.Y.Round()),
			MaxX: sfnt.Units(bounds.Max.X.Round()),
			MaxY: sfnt.Units(-bounds.Min.Y.Round()),
		},
	}
	// If a glyph has no contours, xMax/xMin are not defined; leave the
	// side bearings at zero.
	if !metrics.BBox.IsEmpty() {
		metrics.LSB = metrics.BBox.MinX
		metrics.RSB = metrics.Advance - metrics.BBox.MaxX
	}
	return metrics, nil
}

// Metrics retrieves selected metrics of the font, in font units.
func (f *SFNTFont) Metrics() (FontMetricsInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.face.Metrics(&f.buf, f.unscaled(), font.HintingNone)
	if err != nil {
		return FontMetricsInfo{}, err
	}
	return FontMetricsInfo{
		UnitsPerEm: f.upem,
		Ascent:     sfnt.Units(m.Ascent.Round()),
		Descent:    sfnt.Units(-m.Descent.Round()),
		LineGap:    sfnt.Units((m.Height - m.Ascent - m.Descent).Round()),
		NumGlyphs:  f.face.NumGlyphs(),
	}, nil
}

// FamilyName extracts family and subfamily names from the font's 'name' table.
// Returned values are empty if no matching records exist.
func (f *SFNTFont) FamilyName() (family, subfamily string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	family, _ = f.face.Name(&f.buf, sfnt.NameIDFamily)
	subfamily, _ = f.face.Name(&f.buf, sfnt.NameIDSubfamily)
	return
}

// unscaled is the ppem which makes package sfnt report font units.
func (f *SFNTFont) unscaled() fixed.Int26_6 {
	return fixed.I(int(f.upem))
}
