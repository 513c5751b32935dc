package otarabic

import (
	"github.com/npillmayer/arabshape/otshape"
)

// Arabic modifier combining marks, see
// https://www.unicode.org/reports/tr53/
var modifierCombiningMarks = [...]rune{
	0x0654, // ARABIC HAMZA ABOVE
	0x0655, // ARABIC HAMZA BELOW
	0x0658, // ARABIC MARK NOON GHUNNA
	0x06DC, // ARABIC SMALL HIGH SEEN
	0x06E3, // ARABIC SMALL LOW SEEN
	0x06E7, // ARABIC SMALL HIGH YEH
	0x06E8, // ARABIC SMALL HIGH NOON
	0x08D3, // ARABIC SMALL LOW WAW
	0x08F3, // ARABIC SMALL HIGH WAW
}

func isModifierCombiningMark(r rune) bool {
	for _, m := range modifierCombiningMarks {
		if r == m {
			return true
		}
	}
	return false
}

// maxCombiningMarks bounds the number of marks moved in one step.
const maxCombiningMarks = 32

// Classes the moved marks are renumbered to. Both sort below every Arabic
// class, so the sequence stays ordered by combining class.
const (
	reorderedClassBelow uint8 = 22 // for class 220
	reorderedClassAbove uint8 = 26 // for class 230
)

// ReorderMarks moves modifier combining marks of classes 220 and 230 in
// buf[start:end] in front of the other marks, as required by the Arabic
// Mark Transient Reordering Algorithm (UTR #53). The range is expected to
// be a sequence of marks sorted by modified combining class, excluding the
// base glyph.
func (Shaper) ReorderMarks(_ *otshape.Plan, buf *otshape.Buffer, start, end int) {
	reorderMarks(buf, start, end)
}

func reorderMarks(buf *otshape.Buffer, start, end int) {
	if start > end || end > buf.Len() {
		panic("mark reordering range out of bounds")
	}
	info := buf.Info
	// Locate the groups first; a group beyond the limit leaves the range
	// untouched. The 230-group follows the 220-group, so rotating the
	// first does not move the second.
	type group struct {
		i, j     int
		newClass uint8
	}
	var groups [2]group
	n := 0
	i := start
	for _, cc := range [...]uint8{220, 230} {
		for i < end && info[i].ModifiedCCC < cc {
			i++
		}
		if i == end {
			break
		}
		if info[i].ModifiedCCC > cc {
			continue
		}
		j := i
		for j < end && info[j].ModifiedCCC == cc && isModifierCombiningMark(info[j].Codepoint) {
			j++
		}
		if i == j {
			continue
		}
		if j-i > maxCombiningMarks {
			tracer().Errorf("too many modifier marks to reorder: %d", j-i)
			return
		}
		newClass := reorderedClassAbove
		if cc == 220 {
			newClass = reorderedClassBelow
		}
		groups[n] = group{i: i, j: j, newClass: newClass}
		n++
		i = j
	}
	var temp [maxCombiningMarks]otshape.GlyphInfo
	for _, g := range groups[:n] {
		count := g.j - g.i
		buf.MergeClusters(start, g.j)
		// rotate [start, j) so that [i, j) leads
		copy(temp[:count], info[g.i:g.j])
		copy(info[start+count:g.j], info[start:g.i])
		copy(info[start:start+count], temp[:count])
		for k := start; k < start+count; k++ {
			info[k].ModifiedCCC = g.newClass
		}
		start += count
	}
}
