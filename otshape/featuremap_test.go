package otshape

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/arabshape/ot"
)

func TestMapGlobalFeatureSharesGlobalBit(t *testing.T) {
	mb := NewMapBuilder()
	mb.EnableFeature(ot.T("ccmp"))
	m, err := mb.Compile(AllFeatures)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if m.Mask1(ot.T("ccmp")) != globalBitMask {
		t.Errorf("expected 'ccmp' to use the global bit, mask1 = %#x", m.Mask1(ot.T("ccmp")))
	}
	if m.GlobalMask() != globalBitMask {
		t.Errorf("expected global mask %#x, have %#x", globalBitMask, m.GlobalMask())
	}
}

func TestMapNonGlobalFeaturesGetOwnBits(t *testing.T) {
	mb := NewMapBuilder()
	mb.AddFeature(ot.T("isol"), FeatureNone, 1)
	mb.AddFeature(ot.T("fina"), FeatureNone, 1)
	mb.AddFeature(ot.T("salt"), FeatureGlobal, 5)
	m, err := mb.Compile(AllFeatures)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	isol, fina := m.Mask1(ot.T("isol")), m.Mask1(ot.T("fina"))
	if isol == 0 || fina == 0 || isol == fina || isol&globalBitMask != 0 {
		t.Fatalf("expected distinct non-global bits, have isol=%#x fina=%#x", isol, fina)
	}
	if m.GlobalMask()&(isol|fina) != 0 {
		t.Errorf("non-global features must be off in global mask %#x", m.GlobalMask())
	}
	salt, shift := m.Mask(ot.T("salt"))
	if n := countBits(uint32(salt)); n != 3 {
		t.Errorf("expected 3 bits for value 5, have %d in %#x", n, salt)
	}
	if v := (m.GlobalMask() & salt) >> shift; v != 5 {
		t.Errorf("expected default value 5 for 'salt' in global mask, have %d", v)
	}
}

func countBits(x uint32) (n int) {
	for ; x != 0; x &= x - 1 {
		n++
	}
	return
}

func TestMapMissingFeatures(t *testing.T) {
	mb := NewMapBuilder()
	mb.EnableFeature(ot.T("stch"))
	mb.AddFeature(ot.T("fina"), FeatureHasFallback, 1)
	mb.AddFeature(ot.T("fin2"), FeatureNone, 1)
	m, err := mb.Compile(Tags{ot.T("ccmp")})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if m.Mask1(ot.T("stch")) != 0 || m.Mask1(ot.T("fin2")) != 0 {
		t.Errorf("features missing in font must have mask 0")
	}
	if m.Mask1(ot.T("fina")) == 0 || !m.NeedsFallback(ot.T("fina")) {
		t.Errorf("missing feature with fallback must keep its mask and need fallback")
	}
	if m.NeedsFallback(ot.T("stch")) {
		t.Errorf("'stch' has no fallback")
	}
}

func TestMapStagesAndPauses(t *testing.T) {
	var calls []string
	hook := func(name string) PauseHook {
		return func(PauseContext) error {
			calls = append(calls, name)
			return nil
		}
	}
	mb := NewMapBuilder()
	mb.EnableFeature(ot.T("stch"))
	mb.AddGSUBPause(hook("first"))
	mb.EnableFeature(ot.T("ccmp"))
	mb.EnableFeature(ot.T("locl"))
	mb.AddGSUBPause(nil)
	mb.AddFeature(ot.T("isol"), FeatureNone, 1)
	mb.AddGSUBPause(hook("second"))
	mb.EnableFeature(ot.T("mset"))
	m, err := mb.Compile(AllFeatures)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	stages := m.Stages()
	if len(stages) != 4 {
		t.Fatalf("expected 4 stages, have %d: %s", len(stages), m)
	}
	want := []string{"[stch]", "[ccmp locl]", "[isol]", "[mset]"}
	for i, st := range stages {
		if got := fmt.Sprintf("%v", st.Features); got != want[i] {
			t.Errorf("stage %d: expected %s, have %s", i, want[i], got)
		}
	}
	if stages[1].Pause != nil || stages[3].Pause != nil {
		t.Errorf("expected stages 1 and 3 to have no pause callback")
	}
	for _, st := range stages {
		if st.Pause != nil {
			_ = st.Pause(nil)
		}
	}
	if fmt.Sprint(calls) != "[first second]" {
		t.Errorf("expected pauses to run in insertion order, have %v", calls)
	}
}

func TestMapMergeDuplicates(t *testing.T) {
	mb := NewMapBuilder()
	mb.EnableFeature(ot.T("calt"))
	mb.AddFeature(ot.T("calt"), FeatureManualZWJ, 1)
	mb.AddGSUBPause(nil)
	mb.AddFeature(ot.T("liga"), FeatureGlobal, 0)
	m, err := mb.Compile(AllFeatures)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	calt := m.Mask1(ot.T("calt"))
	if calt == 0 || calt == globalBitMask {
		t.Errorf("a non-global request must make 'calt' non-global, mask1 = %#x", calt)
	}
	if m.Mask1(ot.T("liga")) != 0 {
		t.Errorf("value 0 disables a feature")
	}
	if !mb.HasFeature(ot.T("calt")) || mb.HasFeature(ot.T("liga")) {
		t.Errorf("HasFeature reports disabled or misses enabled features")
	}
}

func TestMapTooManyFeatures(t *testing.T) {
	mb := NewMapBuilder()
	for i := 0; i < 31; i++ {
		mb.AddFeature(ot.T(fmt.Sprintf("f%03d", i)), FeatureNone, 1)
	}
	_, err := mb.Compile(AllFeatures)
	if err == nil || !errors.Is(err, ErrTooManyFeatures) {
		t.Fatalf("expected ErrTooManyFeatures, have %v", err)
	}
}
