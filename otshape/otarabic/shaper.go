package otarabic

import (
	"github.com/npillmayer/arabshape/otshape"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

var (
	arabicScript = language.MustParseScript("Arab")
	syriacScript = language.MustParseScript("Syrc")
)

// Further scripts with Arabic-style cursive joining.
var joiningScripts = []language.Script{
	mongolianScript,
	language.MustParseScript("Nkoo"), // N'Ko
	language.MustParseScript("Phag"), // Phags-pa
	language.MustParseScript("Mand"), // Mandaic
	language.MustParseScript("Mani"), // Manichaean
	language.MustParseScript("Phlp"), // Psalter Pahlavi
	language.MustParseScript("Adlm"), // Adlam
	language.MustParseScript("Rohg"), // Hanifi Rohingya
	language.MustParseScript("Sogd"), // Sogdian
}

// Shaper is the Arabic/Syriac shaping engine. It is stateless; all per-plan
// data lives in the plan.
type Shaper struct{}

var _ otshape.ShapingEngine = (*Shaper)(nil)
var _ otshape.ShapingEnginePlanHooks = (*Shaper)(nil)
var _ otshape.ShapingEngineDataHooks = (*Shaper)(nil)
var _ otshape.ShapingEngineReorderHook = (*Shaper)(nil)
var _ otshape.ShapingEngineMaskHook = (*Shaper)(nil)
var _ otshape.ShapingEnginePostprocessHook = (*Shaper)(nil)

// New returns the Arabic shaping engine.
func New() otshape.ShapingEngine {
	return &Shaper{}
}

func (Shaper) Name() string {
	return "arabic"
}

// Match is certain for Arabic and highly confident for Syriac. The other
// joining scripts are matched with medium confidence. Vertical text is
// never matched.
func (Shaper) Match(ctx otshape.SelectionContext) otshape.ShaperConfidence {
	if ctx.Vertical {
		return otshape.ShaperConfidenceNone
	}
	if ctx.Direction != bidi.LeftToRight && ctx.Direction != bidi.RightToLeft {
		return otshape.ShaperConfidenceNone
	}
	switch ctx.Script {
	case arabicScript:
		return otshape.ShaperConfidenceCertain
	case syriacScript:
		return otshape.ShaperConfidenceHigh
	}
	for _, script := range joiningScripts {
		if ctx.Script == script {
			return otshape.ShaperConfidenceMedium
		}
	}
	return otshape.ShaperConfidenceNone
}

func (Shaper) New() otshape.ShapingEngine {
	return &Shaper{}
}
