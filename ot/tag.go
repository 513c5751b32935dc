package ot

import "encoding/binary"

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// NOTDEF is the glyph index for OpenType ".notdef".
const NOTDEF = GlyphIndex(0)

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// DFLT is the default script/language tag.
var DFLT = T("DFLT")

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(binary.BigEndian.Uint32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(binary.BigEndian.Uint32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// LastByte returns the fourth character of a tag. Feature variants such as
// 'fin2' or 'med2' are told apart by it.
func (t Tag) LastByte() byte {
	return byte(t & 0xff)
}
