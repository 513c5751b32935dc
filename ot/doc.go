/*
Package ot provides the OpenType vocabulary shared by the shaping packages:
glyph indices, 4-byte tags and a light-weight reader for the feature lists
of a font's layout tables.

Package `ot` does not interpret layout lookups. Its only job with respect to
font binaries is to tell a shaping plan which feature tags a font carries in
its GSUB and GPOS tables, so that the plan can decide which features need a
mask bit and which need fallback treatment.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabshape.font'
func tracer() tracing.Trace {
	return tracing.Select("arabshape.font")
}
