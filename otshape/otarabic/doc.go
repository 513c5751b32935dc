/*
Package otarabic provides the Arabic/Syriac shaping engine for package otshape.

The engine assigns contextual forms (isol, init, medi, fina and the Syriac
fin2, fin3 and med2) with the joining state machine, stages the Arabic
features with the GSUB pauses fonts expect, realizes the 'stch' stretching
feature by tiling glyphs, and reorders Arabic modifier marks as described in
Unicode Technical Report #53.

It is used for Arabic and Syriac, and for the other scripts with Arabic-style
joining behaviour (Mongolian, N'Ko, Manichaean, Psalter Pahlavi, Adlam, and
others) when set horizontally.
*/
package otarabic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabshape.arabic'
func tracer() tracing.Trace {
	return tracing.Select("arabshape.arabic")
}
