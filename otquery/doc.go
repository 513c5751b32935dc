/*
Package otquery answers the questions a shaper asks a font: which glyph
represents a code-point, how wide a glyph is, and which layout features the
font provides.

Fonts are parsed with golang.org/x/image/font/sfnt. Advances are reported
in font units.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabshape.font'
func tracer() tracing.Trace {
	return tracing.Select("arabshape.font")
}
