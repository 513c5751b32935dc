/*
Package arabshape shapes Arabic-joining scripts for OpenType fonts.

The heavy lifting is done in the sub-packages: package otshape holds the
buffer and the shaping plan, package otshape/otarabic is the script engine
for Arabic, Syriac, Mongolian, N'Ko and related scripts. This package offers
convenience functions for the common cases: loading a font, finding the
joining forms of a piece of text, running the Arabic mark reordering and
shaping a single run.

Applying GSUB lookups is outside the scope of this module. Clients plug in
their lookup engine through otshape.LookupApplier.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arabshape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabshape'
func tracer() tracing.Trace {
	return tracing.Select("arabshape")
}
