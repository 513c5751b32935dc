package otshape

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/npillmayer/arabshape/ot"
)

// Bit 0 of every mask is the global bit. Features which are global and
// have a maximum value of 1 share it.
const (
	globalBitShift = 0
	globalBitMask  = Mask(1) << globalBitShift
	maxFeatureBits = 8
)

type pauseHookID uint16

const noPauseHook pauseHookID = 0

type planHookSet struct {
	pause []PauseHook
}

func newPlanHookSet() planHookSet {
	return planHookSet{pause: []PauseHook{nil}} // reserve id 0 (noPauseHook)
}

func (hs *planHookSet) addPause(fn PauseHook) pauseHookID {
	if hs == nil || fn == nil {
		return noPauseHook
	}
	if len(hs.pause) == 0 {
		hs.pause = append(hs.pause, nil)
	}
	hs.pause = append(hs.pause, fn)
	return pauseHookID(len(hs.pause) - 1)
}

func (hs *planHookSet) pauseHook(id pauseHookID) PauseHook {
	if hs == nil || id == noPauseHook || int(id) >= len(hs.pause) {
		return nil
	}
	return hs.pause[id]
}

// --- Builder ---------------------------------------------------------------

type featureRequest struct {
	tag          ot.Tag
	seq          int
	maxValue     uint32
	defaultValue uint32
	flags        FeatureFlags
	stage        int
}

type stagePause struct {
	stage int
	hook  pauseHookID
}

// MapBuilder collects feature requests and GSUB pauses of a shaping plan.
// It implements FeaturePlanner.
type MapBuilder struct {
	requests     []featureRequest
	pauses       []stagePause
	currentStage int
	hooks        planHookSet
}

// NewMapBuilder creates an empty feature map builder.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{hooks: newPlanHookSet()}
}

// EnableFeature adds tag as a global feature with value 1.
func (mb *MapBuilder) EnableFeature(tag ot.Tag) {
	mb.AddFeature(tag, FeatureGlobal, 1)
}

// AddFeature requests tag for the current stage. Features without
// FeatureGlobal are off by default and have to be switched on per glyph by
// a script engine's masks.
func (mb *MapBuilder) AddFeature(tag ot.Tag, flags FeatureFlags, value uint32) {
	if mb == nil || tag == 0 {
		return
	}
	req := featureRequest{
		tag:      tag,
		seq:      len(mb.requests),
		maxValue: value,
		flags:    flags,
		stage:    mb.currentStage,
	}
	if flags&FeatureGlobal != 0 {
		req.defaultValue = value
	}
	mb.requests = append(mb.requests, req)
}

// AddGSUBPause ends the current GSUB stage. fn, if non-nil, is called after
// the lookups of the stage have been applied.
func (mb *MapBuilder) AddGSUBPause(fn PauseHook) {
	if mb == nil {
		return
	}
	mb.pauses = append(mb.pauses, stagePause{
		stage: mb.currentStage,
		hook:  mb.hooks.addPause(fn),
	})
	mb.currentStage++
}

// HasFeature reports whether tag has been requested with a non-zero value.
func (mb *MapBuilder) HasFeature(tag ot.Tag) bool {
	if mb == nil {
		return false
	}
	for _, req := range mb.requests {
		if req.tag == tag && req.maxValue > 0 {
			return true
		}
	}
	return false
}

// mergeRequests sorts requests by tag and folds duplicates. A later global
// request overrides the values of earlier ones; a later non-global request
// makes the feature non-global.
func mergeRequests(requests []featureRequest) []featureRequest {
	sorted := append([]featureRequest(nil), requests...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].tag == sorted[j].tag {
			return sorted[i].seq < sorted[j].seq
		}
		return sorted[i].tag < sorted[j].tag
	})
	merged := sorted[:0]
	for _, req := range sorted {
		if len(merged) == 0 || merged[len(merged)-1].tag != req.tag {
			merged = append(merged, req)
			continue
		}
		m := &merged[len(merged)-1]
		if req.flags&FeatureGlobal != 0 {
			m.flags |= FeatureGlobal
			m.maxValue = req.maxValue
			m.defaultValue = req.defaultValue
		} else {
			m.flags &^= FeatureGlobal
			m.maxValue = max(m.maxValue, req.maxValue)
		}
		m.flags |= req.flags & (FeatureHasFallback | FeatureManualJoiners)
		m.stage = min(m.stage, req.stage)
	}
	return merged
}

// Compile allocates mask bits and assigns stages. Features not in
// available get no mask, unless they are flagged FeatureHasFallback; those
// are marked as needing fallback shaping.
// If the features need more than 31 mask bits, an error wrapping
// ErrTooManyFeatures is returned.
func (mb *MapBuilder) Compile(available FeatureSet) (*Map, error) {
	assert(mb != nil, "compile called on nil map builder")
	if available == nil {
		available = NoFeatures
	}
	m := &Map{
		globalMask: globalBitMask,
		hooks:      mb.hooks,
	}
	nextBit := uint(globalBitShift + 1)
	for _, req := range mergeRequests(mb.requests) {
		if req.maxValue == 0 {
			continue // disabled
		}
		found := available.Has(req.tag)
		if !found && req.flags&FeatureHasFallback == 0 {
			tracer().Debugf("feature '%s' not provided by font", req.tag)
			continue
		}
		entry := featureEntry{
			tag:           req.tag,
			stage:         req.stage,
			flags:         req.flags,
			needsFallback: !found,
		}
		if req.flags&FeatureGlobal != 0 && req.maxValue == 1 {
			entry.shift = globalBitShift
			entry.mask = globalBitMask
		} else {
			bitsNeeded := min(bits.Len32(req.maxValue), maxFeatureBits)
			if nextBit+uint(bitsNeeded) > 31 {
				return nil, fmt.Errorf("feature '%s' needs %d bits at bit %d: %w",
					req.tag, bitsNeeded, nextBit, ErrTooManyFeatures)
			}
			entry.shift = uint8(nextBit)
			entry.mask = (Mask(1)<<uint(bitsNeeded) - 1) << nextBit
			nextBit += uint(bitsNeeded)
			if req.flags&FeatureGlobal != 0 {
				m.globalMask |= Mask(req.defaultValue<<entry.shift) & entry.mask
			}
		}
		entry.mask1 = (Mask(1) << entry.shift) & entry.mask
		m.features = append(m.features, entry)
	}
	m.stages = compileStages(m.features, mb.pauses, mb.currentStage)
	tracer().Debugf("compiled feature map: %s", m)
	return m, nil
}

func compileStages(features []featureEntry, pauses []stagePause, lastStage int) []stage {
	stages := make([]stage, lastStage+1)
	for i := range stages {
		stages[i].index = i
	}
	for _, f := range features {
		stages[f.stage].features = append(stages[f.stage].features, f.tag)
	}
	for _, p := range pauses {
		stages[p.stage].pause = p.hook
		stages[p.stage].isPause = true
	}
	return stages
}

// --- Map -------------------------------------------------------------------

type featureEntry struct {
	tag           ot.Tag
	stage         int
	flags         FeatureFlags
	shift         uint8
	mask          Mask
	mask1         Mask
	needsFallback bool
}

type stage struct {
	index    int
	features []ot.Tag
	pause    pauseHookID
	isPause  bool
}

// Stage is a group of features whose lookups are applied together, followed
// by an optional pause.
type Stage struct {
	Features []ot.Tag
	Pause    PauseHook // nil for stages ending without a callback
}

// Map is the compiled, immutable feature map of a plan. It is safe for
// concurrent use.
type Map struct {
	features   []featureEntry // sorted by tag
	stages     []stage
	globalMask Mask
	hooks      planHookSet
}

func (m *Map) lookup(tag ot.Tag) (featureEntry, bool) {
	if m == nil {
		return featureEntry{}, false
	}
	i := sort.Search(len(m.features), func(i int) bool {
		return m.features[i].tag >= tag
	})
	if i < len(m.features) && m.features[i].tag == tag {
		return m.features[i], true
	}
	return featureEntry{}, false
}

// Mask1 returns the mask value selecting tag with value 1, or 0 if tag is
// not part of the map.
func (m *Map) Mask1(tag ot.Tag) Mask {
	f, _ := m.lookup(tag)
	return f.mask1
}

// Mask returns the mask bits allocated to tag and their shift.
func (m *Map) Mask(tag ot.Tag) (Mask, uint8) {
	f, _ := m.lookup(tag)
	return f.mask, f.shift
}

// NeedsFallback is true for features the font does not provide but which
// have been flagged with FeatureHasFallback.
func (m *Map) NeedsFallback(tag ot.Tag) bool {
	f, _ := m.lookup(tag)
	return f.needsFallback
}

// GlobalMask is the mask every glyph starts with.
func (m *Map) GlobalMask() Mask {
	if m == nil {
		return 0
	}
	return m.globalMask
}

// Features returns the tags of the map, sorted.
func (m *Map) Features() []ot.Tag {
	if m == nil {
		return nil
	}
	tags := make([]ot.Tag, len(m.features))
	for i, f := range m.features {
		tags[i] = f.tag
	}
	return tags
}

// Stages returns the GSUB stages in application order.
func (m *Map) Stages() []Stage {
	if m == nil {
		return nil
	}
	out := make([]Stage, len(m.stages))
	for i, st := range m.stages {
		out[i] = Stage{
			Features: append([]ot.Tag(nil), st.features...),
			Pause:    m.hooks.pauseHook(st.pause),
		}
	}
	return out
}

func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("global=%#x", uint32(m.globalMask)))
	for _, st := range m.stages {
		sb.WriteString(" [")
		for i, tag := range st.features {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(tag.String())
		}
		sb.WriteByte(']')
		if st.isPause {
			sb.WriteString(" |")
		}
	}
	return sb.String()
}

// --- Feature sets ----------------------------------------------------------

type featureSetFunc func(ot.Tag) bool

func (fn featureSetFunc) Has(tag ot.Tag) bool { return fn(tag) }

// NoFeatures is a feature set of a font without layout tables.
var NoFeatures FeatureSet = featureSetFunc(func(ot.Tag) bool { return false })

// AllFeatures is a feature set claiming support for every feature.
var AllFeatures FeatureSet = featureSetFunc(func(ot.Tag) bool { return true })

// Tags is a feature set listing the supported features explicitly.
type Tags []ot.Tag

// Has reports whether tag is in the list.
func (tags Tags) Has(tag ot.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
