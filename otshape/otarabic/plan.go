package otarabic

import (
	"github.com/npillmayer/arabshape/otshape"
	"golang.org/x/text/language"
)

// shapePlan is the engine's per-plan data. It is immutable once created.
type shapePlan struct {
	// The +1 slot is for None, which is not an OpenType feature.
	maskArray  [len(formFeatures) + 1]otshape.Mask
	hasStch    bool
	doFallback bool
}

// DataCreate reads back the masks of the positional form features from the
// compiled feature map.
func (Shaper) DataCreate(plan otshape.PlanContext) any {
	fmap := plan.Map()
	data := &shapePlan{
		hasStch:    fmap.Mask1(tagStch) != 0,
		doFallback: plan.Selection().Script == arabicScript,
	}
	for i, tag := range formFeatures {
		data.maskArray[i] = fmap.Mask1(tag)
		data.doFallback = data.doFallback && (featureIsSyriac(tag) || fmap.NeedsFallback(tag))
	}
	tracer().Debugf("Arabic plan: stch=%v, fallback=%v, masks=%v", data.hasStch, data.doFallback, data.maskArray)
	return data
}

// DataDestroy releases plan data. There are no resources beyond memory.
func (Shaper) DataDestroy(data any) {
	if sp, ok := data.(*shapePlan); ok {
		*sp = shapePlan{}
	}
}

func planData(plan *otshape.Plan) *shapePlan {
	data, ok := plan.Data().(*shapePlan)
	if !ok {
		panic("Arabic shaping plan without Arabic plan data")
	}
	return data
}

var mongolianScript = language.MustParseScript("Mong")

// SetupMasks runs the joining state machine and arms the positional form
// feature selected for each glyph.
func (Shaper) SetupMasks(plan *otshape.Plan, buf *otshape.Buffer) {
	data := planData(plan)
	applyJoining(buf)
	if plan.Selection().Script == mongolianScript {
		mongolianVariationSelectors(buf)
	}
	for i := range buf.Info {
		if a := ActionOf(buf.Info[i]); int(a) < len(data.maskArray) {
			buf.Info[i].Mask |= data.maskArray[a]
		}
	}
}
