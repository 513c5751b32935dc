package ucd

import "golang.org/x/text/unicode/norm"

// CombiningClass returns the canonical combining class of r.
func CombiningClass(r rune) uint8 {
	if r < 0x0300 {
		return 0
	}
	return norm.NFD.PropertiesString(string(r)).CCC()
}

// Modified combining classes which are not the identity. Hebrew and Arabic
// points are renumbered so that canonical ordering produces the order fonts
// expect (e.g., shadda before the vowel marks).
var modifiedClasses = map[uint8]uint8{
	// Hebrew
	10: 22, 11: 15, 12: 16, 13: 17, 14: 23, 15: 18, 16: 19, 17: 20,
	18: 21, 19: 14, 20: 24, 21: 12, 22: 25, 23: 13, 24: 10, 25: 11, 26: 26,
	// Arabic
	27: 28, 28: 29, 29: 30, 30: 31, 31: 32, 32: 33, 33: 27, 34: 34, 35: 35,
	// Syriac
	36: 36,
	// Telugu
	84: 0, 91: 0,
	// Thai
	103: 3, 107: 107,
	// Lao
	118: 118, 122: 122,
	// Tibetan
	129: 129, 130: 132, 132: 131,
}

// ModifiedCombiningClass returns the combining class of r as used for mark
// reordering by the shapers.
func ModifiedCombiningClass(r rune) uint8 {
	switch r {
	case 0x1A60: // TAI THAM SIGN SAKOT sorts after tone marks
		return 254
	case 0x0FC6: // TIBETAN SYMBOL PADMA GDAN sorts after vowel marks
		return 254
	case 0x0F39: // TIBETAN MARK TSA -PHRU sorts before U+0F74
		return 127
	}
	ccc := CombiningClass(r)
	if m, ok := modifiedClasses[ccc]; ok {
		return m
	}
	return ccc
}
