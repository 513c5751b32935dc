/*
Package otshape provides the shaping contract between an outer OpenType
shaping driver and script-specific shaping engines.

The package is centered around [Plan] and [Buffer]:
  - a [ShapingEngine] is selected for a segment by [Shaper.Select],
  - [NewPlan] lets the engine collect its features through a [FeaturePlanner],
    compiles them into a feature [Map] and creates the engine's plan data,
  - [Plan.Shape] drives a [Buffer] through mask setup, the GSUB stages of the
    map (with pauses calling back into the engine) and post-processing.

Applying GSUB and GPOS lookups is outside the scope of this package; the
driver plugs them in as a [LookupApplier].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otshape

import (
	"errors"
	"fmt"

	"github.com/npillmayer/arabshape/ot"
	"github.com/npillmayer/schuko/tracing"
)

// NOTDEF is the glyph index for OpenType ".notdef".
const NOTDEF = ot.GlyphIndex(0)

// tracer returns a trace sink for the otshape package namespace.
func tracer() tracing.Trace {
	return tracing.Select("arabshape.shaper")
}

var (
	// ErrBufferOverflow indicates that a buffer would grow beyond its maximum length.
	ErrBufferOverflow = errors.New("otshape: buffer length limit exceeded")
	// ErrTooManyFeatures indicates that the features of a plan do not fit into a 32-bit mask.
	ErrTooManyFeatures = errors.New("otshape: no mask bits left for feature")
	// ErrNoShaper indicates that no candidate shaping engine was supplied.
	ErrNoShaper = errors.New("otshape: no shaping engine supplied")
	// ErrNoMatchingShaper indicates that none of the supplied engines matched the segment context.
	ErrNoMatchingShaper = errors.New("otshape: no supplied shaping engine matches selection context")
)

// errShaper wraps a message as a user-facing shaping error.
func errShaper(x string) error {
	return fmt.Errorf("OpenType text shaping: %s", x)
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
