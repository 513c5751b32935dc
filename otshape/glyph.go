package otshape

import (
	"fmt"

	"github.com/npillmayer/arabshape/ot"
	"github.com/npillmayer/arabshape/ucd"
)

// Mask is a per-glyph feature-selection bit set.
type Mask uint32

// GlyphFlags are flags of a glyph visible to clients of a shaping result.
type GlyphFlags uint8

const (
	// GlyphUnsafeToBreak tells line-breakers that the text must be re-shaped
	// if broken at the start of this glyph's cluster.
	GlyphUnsafeToBreak GlyphFlags = 1 << iota
)

// GlyphProps are shaping-internal glyph properties.
type GlyphProps uint8

const (
	// PropMultiplied is set on the pieces a multiple substitution produced.
	PropMultiplied GlyphProps = 1 << iota
	// PropDefaultIgnorable is set for default-ignorable code-points.
	PropDefaultIgnorable
)

// ScratchFlags is a bit set for communication between shaping stages.
// The upper bits are reserved for script engines.
type ScratchFlags uint32

const (
	ScratchHasNonASCII ScratchFlags = 1 << iota
	ScratchHasDefaultIgnorables

	// ScratchEngine0 is the first bit available to script engines.
	ScratchEngine0 ScratchFlags = 1 << 24
)

// GlyphInfo is the per-position record of a buffer.
type GlyphInfo struct {
	Codepoint       rune
	Glyph           ot.GlyphIndex
	GeneralCategory ucd.GeneralCategory
	Cluster         uint32
	Mask            Mask
	Flags           GlyphFlags
	Props           GlyphProps
	LigComp         uint8 // component index within a ligature or multiple substitution
	ModifiedCCC     uint8
	ComplexAux      uint8 // reserved for the script engine
}

// IsMultiplied is true for glyphs produced by a multiple substitution.
func (gi GlyphInfo) IsMultiplied() bool {
	return gi.Props&PropMultiplied != 0
}

// IsDefaultIgnorable is true for default-ignorable code-points.
func (gi GlyphInfo) IsDefaultIgnorable() bool {
	return gi.Props&PropDefaultIgnorable != 0
}

func (gi GlyphInfo) String() string {
	return fmt.Sprintf("[U+%04X g=%d cl=%d m=%#x aux=%d]",
		gi.Codepoint, gi.Glyph, gi.Cluster, uint32(gi.Mask), gi.ComplexAux)
}

// GlyphPosition holds positioning information in font units.
type GlyphPosition struct {
	XAdvance int32
	YAdvance int32
	XOffset  int32
	YOffset  int32
}
