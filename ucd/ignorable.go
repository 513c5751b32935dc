package ucd

import "github.com/go-text/typesetting/harfbuzz"

// IsDefaultIgnorable reports whether r has the Default_Ignorable_Code_Point
// property, minus the code-points shapers must not hide (Hangul fillers,
// U+115F, U+1160, U+3164, U+FFA0, and U+1BCA0..U+1BCA3).
func IsDefaultIgnorable(r rune) bool {
	return harfbuzz.IsDefaultIgnorable(r)
}
