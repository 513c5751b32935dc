package otshape

import (
	"fmt"
)

// Plan is the compiled shaping plan for a segment: the selected engine, its
// feature map and the engine's plan data. A plan is immutable after
// creation and may be shared between concurrent shaping calls.
type Plan struct {
	engine    ShapingEngine
	selection SelectionContext
	fmap      *Map
	data      any
}

// NewPlan collects the engine's features, compiles them against the features
// available in a font, and lets the engine create its plan data.
func NewPlan(engine ShapingEngine, selection SelectionContext, available FeatureSet) (*Plan, error) {
	if engine == nil {
		return nil, ErrNoShaper
	}
	mb := NewMapBuilder()
	if hooks, ok := engine.(ShapingEnginePlanHooks); ok {
		hooks.CollectFeatures(mb, selection)
	}
	fmap, err := mb.Compile(available)
	if err != nil {
		return nil, fmt.Errorf("compiling plan for engine %q: %w", engine.Name(), err)
	}
	pl := &Plan{
		engine:    engine,
		selection: selection,
		fmap:      fmap,
	}
	if hooks, ok := engine.(ShapingEngineDataHooks); ok {
		pl.data = hooks.DataCreate(pl)
	}
	tracer().Debugf("created plan for engine %s, script %s", engine.Name(), selection.Script)
	return pl, nil
}

// Engine returns the shaping engine of the plan.
func (pl *Plan) Engine() ShapingEngine { return pl.engine }

// Map returns the compiled feature map.
func (pl *Plan) Map() *Map { return pl.fmap }

// Selection returns the segment properties the plan has been created for.
func (pl *Plan) Selection() SelectionContext { return pl.selection }

// Data returns the engine's plan data, if any.
func (pl *Plan) Data() any { return pl.data }

// Destroy releases the engine's plan data. Calling Destroy more than once
// is harmless.
func (pl *Plan) Destroy() {
	if pl == nil || pl.data == nil {
		return
	}
	if hooks, ok := pl.engine.(ShapingEngineDataHooks); ok {
		hooks.DataDestroy(pl.data)
	}
	pl.data = nil
}

// SetupMasks resets every glyph to the global mask and lets the engine
// arm its per-glyph features.
func (pl *Plan) SetupMasks(buf *Buffer) {
	buf.ResetMasks(pl.fmap.GlobalMask())
	if hooks, ok := pl.engine.(ShapingEngineMaskHook); ok {
		hooks.SetupMasks(pl, buf)
	}
}

// ReorderMarks lets the engine reorder the marks in buf[start:end].
// The range must not include the base glyph.
func (pl *Plan) ReorderMarks(buf *Buffer, start, end int) {
	assert(start <= end, "reorder range start > end")
	if hooks, ok := pl.engine.(ShapingEngineReorderHook); ok {
		hooks.ReorderMarks(pl, buf, start, end)
	}
}

// Shape drives buf through mask setup, the GSUB stages of the plan, default
// positioning and post-processing. lookups applies the features of each stage; it may be
// nil, in which case only pauses are run. Shape stops at the first error.
func (pl *Plan) Shape(font Font, buf *Buffer, lookups LookupApplier) error {
	if err := buf.CheckInvariants(); err != nil {
		return err
	}
	pl.SetupMasks(buf)
	ctx := pauseContext{plan: pl, font: font, buf: buf}
	for i, st := range pl.fmap.stages {
		if lookups != nil && len(st.features) > 0 {
			if err := lookups.ApplyGSUB(pl.fmap, st.features, font, buf); err != nil {
				return fmt.Errorf("GSUB stage %d: %w", i, err)
			}
		}
		if fn := pl.fmap.hooks.pauseHook(st.pause); fn != nil {
			tracer().Debugf("calling pause after stage %d", i)
			if err := fn(ctx); err != nil {
				return fmt.Errorf("pause after stage %d: %w", i, err)
			}
		}
	}
	positionDefault(font, buf)
	if hooks, ok := pl.engine.(ShapingEnginePostprocessHook); ok {
		if err := hooks.PostprocessGlyphs(pl, font, buf); err != nil {
			return err
		}
	}
	return buf.CheckInvariants()
}

// positionDefault sets the horizontal advance of every glyph from the font.
func positionDefault(font Font, buf *Buffer) {
	if font == nil {
		return
	}
	for i := range buf.Info {
		buf.Pos[i] = GlyphPosition{XAdvance: font.GlyphHAdvance(buf.Info[i].Glyph)}
	}
}

type pauseContext struct {
	plan *Plan
	font Font
	buf  *Buffer
}

func (pc pauseContext) Plan() *Plan     { return pc.plan }
func (pc pauseContext) Font() Font      { return pc.font }
func (pc pauseContext) Buffer() *Buffer { return pc.buf }
