package otcore

import (
	"github.com/npillmayer/arabshape/ot"
	"github.com/npillmayer/arabshape/otshape"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// Shaper is the default OpenType shaping engine.
type Shaper struct{}

var _ otshape.ShapingEngine = Shaper{}
var _ otshape.ShapingEnginePlanHooks = Shaper{}

// New returns a new core shaping engine instance.
func New() otshape.ShapingEngine {
	return Shaper{}
}

// Name returns the stable engine name used for tie-breaking.
func (Shaper) Name() string {
	return "core"
}

var latinScript = language.MustParseScript("Latn")

// Match prefers Latin segments and rejects vertical text. Other horizontal
// segments get a low confidence, so script-specific engines outvote it.
func (Shaper) Match(ctx otshape.SelectionContext) otshape.ShaperConfidence {
	if ctx.Vertical {
		return otshape.ShaperConfidenceNone
	}
	if ctx.Direction != bidi.LeftToRight && ctx.Direction != bidi.RightToLeft {
		return otshape.ShaperConfidenceNone
	}
	if ctx.Script == latinScript {
		return otshape.ShaperConfidenceHigh
	}
	return otshape.ShaperConfidenceLow
}

// New returns a new independent core engine instance.
func (Shaper) New() otshape.ShapingEngine {
	return Shaper{}
}

// Features of the core engine, all applied in one stage after 'ccmp' and 'locl'.
var (
	preFeatures  = []ot.Tag{ot.T("ccmp"), ot.T("locl")}
	mainFeatures = []ot.Tag{ot.T("rlig"), ot.T("calt"), ot.T("liga"), ot.T("clig")}
)

// CollectFeatures enables the default substitution features. Right-to-left
// segments additionally get 'rtlm' for mirrored forms.
func (Shaper) CollectFeatures(plan otshape.FeaturePlanner, ctx otshape.SelectionContext) {
	for _, tag := range preFeatures {
		plan.EnableFeature(tag)
	}
	plan.AddGSUBPause(nil)
	if ctx.Direction == bidi.RightToLeft {
		plan.EnableFeature(ot.T("rtlm"))
	}
	for _, tag := range mainFeatures {
		plan.AddFeature(tag, otshape.FeatureGlobal|otshape.FeatureManualZWJ, 1)
	}
}
