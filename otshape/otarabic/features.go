package otarabic

import (
	"github.com/npillmayer/arabshape/ot"
	"github.com/npillmayer/arabshape/otshape"
)

var (
	tagStch = ot.T("stch")
	tagCCMP = ot.T("ccmp")
	tagLocl = ot.T("locl")
	tagIsol = ot.T("isol")
	tagFina = ot.T("fina")
	tagFin2 = ot.T("fin2")
	tagFin3 = ot.T("fin3")
	tagMedi = ot.T("medi")
	tagMed2 = ot.T("med2")
	tagInit = ot.T("init")
	tagRlig = ot.T("rlig")
	tagRclt = ot.T("rclt")
	tagCalt = ot.T("calt")
	tagMset = ot.T("mset")
)

// Positional form features, in the order of the corresponding actions.
var formFeatures = [...]ot.Tag{
	tagIsol, tagFina, tagFin2, tagFin3, tagMedi, tagMed2, tagInit,
}

// Order in which the positional form features are staged.
var formStages = [...]ot.Tag{
	tagIsol, tagFin2, tagFin3, tagFina, tagMedi, tagMed2, tagInit,
}

// featureIsSyriac is true for the Syriac-only forms fin2, fin3 and med2.
func featureIsSyriac(tag ot.Tag) bool {
	return '2' <= tag.LastByte() && tag.LastByte() <= '3'
}

// CollectFeatures declares the Arabic feature sequence. Pauses separate the
// positional forms, so that each sees the result of the previous one.
//
// 'cswh' is not enabled: fonts apply it through 'calt' where they need it.
func (Shaper) CollectFeatures(plan otshape.FeaturePlanner, ctx otshape.SelectionContext) {
	plan.EnableFeature(tagStch)
	plan.AddGSUBPause(recordStch)

	plan.EnableFeature(tagCCMP)
	plan.EnableFeature(tagLocl)
	plan.AddGSUBPause(nil)

	isArabic := ctx.Script == arabicScript
	for _, tag := range formStages {
		flags := otshape.FeatureNone
		if isArabic && !featureIsSyriac(tag) {
			flags |= otshape.FeatureHasFallback
		}
		plan.AddFeature(tag, flags, 1)
		plan.AddGSUBPause(nil)
	}

	plan.AddFeature(tagRlig, otshape.FeatureGlobal|otshape.FeatureManualZWJ|otshape.FeatureHasFallback, 1)
	if isArabic {
		plan.AddGSUBPause(fallbackShape)
	}

	plan.AddFeature(tagRclt, otshape.FeatureGlobal|otshape.FeatureManualZWJ, 1)
	plan.AddFeature(tagCalt, otshape.FeatureGlobal|otshape.FeatureManualZWJ, 1)
	plan.AddGSUBPause(nil)

	plan.EnableFeature(tagMset)
}

// fallbackShape is the pause after 'rlig' for Arabic. Fonts lacking the
// positional forms would need their glyphs synthesized from the Unicode
// presentation forms here; this engine leaves them unshaped.
func fallbackShape(ctx otshape.PauseContext) error {
	data, ok := ctx.Plan().Data().(*shapePlan)
	if ok && data.doFallback {
		tracer().Infof("font has no Arabic positional forms, no fallback shaping applied")
	}
	return nil
}
