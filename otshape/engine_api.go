package otshape

import (
	"github.com/npillmayer/arabshape/ot"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// SelectionContext carries the minimum segment metadata for shaper selection.
type SelectionContext struct {
	Direction bidi.Direction
	Vertical  bool            // top-to-bottom or bottom-to-top text
	Script    language.Script // unicode.org/iso15924/iso15924-codes.html
	Language  language.Tag
}

// FeatureFlags guide feature resolution and lookup behavior in plan compilation.
type FeatureFlags uint16

const FeatureNone FeatureFlags = 0

const (
	FeatureGlobal FeatureFlags = 1 << iota
	FeatureHasFallback
	FeatureManualZWNJ
	FeatureManualZWJ
)

// FeatureManualJoiners disables automatic skipping for both ZWJ and ZWNJ.
const FeatureManualJoiners = FeatureManualZWNJ | FeatureManualZWJ

// FeatureSet tells which feature tags a font supports.
// ot.LayoutFeatures implements it.
type FeatureSet interface {
	Has(tag ot.Tag) bool
}

// FeaturePlanner is the plan-time interface for collecting feature intents.
type FeaturePlanner interface {
	EnableFeature(tag ot.Tag)
	AddFeature(tag ot.Tag, flags FeatureFlags, value uint32)
	AddGSUBPause(fn PauseHook)
	HasFeature(tag ot.Tag) bool
}

// PlanContext is the narrow plan view available to shaper hooks.
type PlanContext interface {
	Map() *Map
	Selection() SelectionContext
}

// Font is the font view required by shaper hooks.
type Font interface {
	GlyphHAdvance(gid ot.GlyphIndex) int32
}

// PauseContext is the callback context for GSUB stage pauses.
type PauseContext interface {
	Plan() *Plan
	Font() Font
	Buffer() *Buffer
}

// PauseHook may mutate run data between GSUB stages.
type PauseHook func(ctx PauseContext) error

// LookupApplier applies the lookups of a set of features to a buffer,
// restricted to glyphs having the features' masks set.
// This is the seam for a GSUB implementation.
type LookupApplier interface {
	ApplyGSUB(m *Map, features []ot.Tag, font Font, buf *Buffer) error
}

type ShaperConfidence int

const (
	ShaperConfidenceNone ShaperConfidence = iota
	ShaperConfidenceLow
	ShaperConfidenceMedium
	ShaperConfidenceHigh
	ShaperConfidenceCertain
)

// ShapingEngine is the mandatory minimal interface for shaper selection.
type ShapingEngine interface {
	Name() string
	Match(ctx SelectionContext) ShaperConfidence
	New() ShapingEngine
}

// ShapingEnginePlanHooks exposes plan-time hooks.
type ShapingEnginePlanHooks interface {
	CollectFeatures(plan FeaturePlanner, ctx SelectionContext)
}

// ShapingEngineDataHooks exposes creation and destruction of per-plan engine data.
type ShapingEngineDataHooks interface {
	DataCreate(plan PlanContext) any
	DataDestroy(data any)
}

// ShapingEngineReorderHook exposes mark-reordering before GSUB.
type ShapingEngineReorderHook interface {
	ReorderMarks(plan *Plan, buf *Buffer, start, end int)
}

// ShapingEngineMaskHook exposes a hook to customize runtime mask values.
type ShapingEngineMaskHook interface {
	SetupMasks(plan *Plan, buf *Buffer)
}

// ShapingEnginePostprocessHook exposes a hook after shaping stages complete.
type ShapingEnginePostprocessHook interface {
	PostprocessGlyphs(plan *Plan, font Font, buf *Buffer) error
}
