package otshape

// Shaper selects shaping engines for text segments.
//
// There is no global registry; callers provide candidate engines.
type Shaper struct {
	Engines []ShapingEngine
}

// NewShaper creates a shaper from explicit candidate engines.
// Nil entries are ignored.
func NewShaper(engines ...ShapingEngine) *Shaper {
	list := make([]ShapingEngine, 0, len(engines))
	for _, sh := range engines {
		if sh != nil {
			list = append(list, sh)
		}
	}
	return &Shaper{Engines: list}
}

// Select returns a fresh instance of the engine best matching ctx.
// Ties are broken by engine name.
func (s *Shaper) Select(ctx SelectionContext) (ShapingEngine, error) {
	if s == nil || len(s.Engines) == 0 {
		return nil, ErrNoShaper
	}
	var (
		best      ShapingEngine
		bestScore = ShaperConfidenceNone
	)
	for _, sh := range s.Engines {
		score := sh.Match(ctx)
		if score <= ShaperConfidenceNone {
			continue
		}
		if best == nil || score > bestScore || (score == bestScore && sh.Name() < best.Name()) {
			best = sh
			bestScore = score
		}
	}
	if best == nil {
		return nil, ErrNoMatchingShaper
	}
	tracer().Debugf("selected engine %s with confidence %d", best.Name(), bestScore)
	inst := best.New()
	if inst == nil {
		inst = best
	}
	return inst, nil
}

// NewPlan selects an engine for ctx and creates a plan with it.
func (s *Shaper) NewPlan(ctx SelectionContext, available FeatureSet) (*Plan, error) {
	engine, err := s.Select(ctx)
	if err != nil {
		return nil, err
	}
	return NewPlan(engine, ctx, available)
}
