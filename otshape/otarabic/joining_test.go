package otarabic

import (
	"fmt"
	"testing"

	"github.com/npillmayer/arabshape/otshape"
	"github.com/npillmayer/arabshape/ucd"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeBuffer(t *testing.T, cps ...rune) *otshape.Buffer {
	t.Helper()
	buf := otshape.NewBuffer(otshape.BufferOptions{})
	if err := buf.AddRunes(cps, 0); err != nil {
		t.Fatalf("cannot fill buffer: %v", err)
	}
	return buf
}

func TestClassify(t *testing.T) {
	cases := []struct {
		cp rune
		jt ucd.JoiningType
	}{
		{0x0627, ucd.JoiningR},
		{0x0644, ucd.JoiningD},
		{0x064E, ucd.JoiningT},
		{0x0640, ucd.JoiningD}, // tatweel is join-causing
		{0x0710, ucd.JoiningGroupAlaph},
		{0x0715, ucd.JoiningGroupDalathRish},
		{'a', ucd.JoiningU},
		{' ', ucd.JoiningU},
		{0x0301, ucd.JoiningT}, // combining acute, not in joining data
		{0x20DD, ucd.JoiningT}, // enclosing circle
		{0xFEFF, ucd.JoiningT}, // format character, not in joining data
		{0x2066, ucd.JoiningU}, // listed explicitly
	}
	for _, c := range cases {
		if jt := Classify(c.cp, ucd.LookupGeneralCategory(c.cp)); jt != c.jt {
			t.Errorf("U+%04X: expected joining type %s, have %s", c.cp, c.jt, jt)
		}
	}
}

func TestJoiningSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.arabic")
	defer teardown()
	//
	cases := []struct {
		name    string
		cps     []rune
		actions []Action
		state   joiningState
	}{
		{"isolated alef", []rune{0x0627}, []Action{Isol}, 1},
		{"lam alef", []rune{0x0644, 0x0627}, []Action{Init, Fina}, 1},
		{"beh beh beh", []rune{0x0628, 0x0628, 0x0628}, []Action{Init, Medi, Fina}, 3},
		{"lam fatha alef", []rune{0x0644, 0x064E, 0x0627}, []Action{Init, None, Fina}, 1},
		{"alaph lamadh alaph", []rune{0x0710, 0x0720, 0x0710}, []Action{Isol, Init, Fina}, 4},
		{"alaph alaph", []rune{0x0710, 0x0710}, []Action{Isol, Fin2}, 5},
		{"dalath alaph", []rune{0x0715, 0x0710}, []Action{Isol, Fin3}, 5},
		{"beh alaph beh", []rune{0x0628, 0x0710, 0x0628}, []Action{Init, Med2, Isol}, 2},
		{"beh space beh", []rune{0x0628, ' ', 0x0628}, []Action{Isol, None, Isol}, 2},
	}
	for _, c := range cases {
		buf := makeBuffer(t, c.cps...)
		state := applyJoining(buf)
		if got := fmt.Sprint(Actions(buf)); got != fmt.Sprint(c.actions) {
			t.Errorf("%s: expected actions %v, have %v", c.name, c.actions, got)
		}
		if state != c.state {
			t.Errorf("%s: expected final state %d, have %d", c.name, c.state, state)
		}
	}
}

func TestJoiningUnsafeToBreak(t *testing.T) {
	buf := makeBuffer(t, 0x0644, 0x0627)
	ApplyJoining(buf)
	if buf.Info[1].Flags&otshape.GlyphUnsafeToBreak == 0 {
		t.Errorf("expected joined lam-alef to be unsafe to break between")
	}
	buf = makeBuffer(t, 0x0627, 0x0627)
	ApplyJoining(buf)
	for i, info := range buf.Info {
		if info.Flags&otshape.GlyphUnsafeToBreak != 0 {
			t.Errorf("non-joining alef %d must stay breakable", i)
		}
	}
}

func TestJoiningContext(t *testing.T) {
	buf := makeBuffer(t, 0x0627)
	buf.SetContext([]rune{0x0628, 0x064E}, nil) // beh fatha | alef
	ApplyJoining(buf)
	if a := ActionOf(buf.Info[0]); a != Fina {
		t.Errorf("expected alef after beh in pre-context to be final, is %s", a)
	}
	//
	buf = makeBuffer(t, 0x0628)
	buf.SetContext(nil, []rune{0x064E, 0x0628}) // beh | fatha beh
	ApplyJoining(buf)
	if a := ActionOf(buf.Info[0]); a != Init {
		t.Errorf("expected beh before beh in post-context to be initial, is %s", a)
	}
	if buf.Len() != 1 {
		t.Errorf("post-context must not be added to the buffer")
	}
	//
	buf = makeBuffer(t, 0x0628)
	buf.SetContext([]rune{0x0628, ' '}, []rune{' ', 0x0628})
	ApplyJoining(buf)
	if a := ActionOf(buf.Info[0]); a != Isol {
		t.Errorf("expected beh between spaces to be isolated, is %s", a)
	}
}

// Removing transparent characters must not change the actions of the others.
func TestJoiningTransparentInvariance(t *testing.T) {
	words := [][]rune{
		{0x0644, 0x064E, 0x0627},
		{0x0628, 0x0651, 0x064E, 0x0628, 0x0650, 0x0628},
		{0x0710, 0x0730, 0x0720, 0x0732, 0x0710},
		{0x0628, 0x200D, 0x064B, ' ', 0x0627},
	}
	for _, word := range words {
		buf := makeBuffer(t, word...)
		ApplyJoining(buf)
		var withT, stripped []Action
		var opaque []rune
		for i, cp := range word {
			if Classify(cp, ucd.LookupGeneralCategory(cp)) == ucd.JoiningT {
				if a := ActionOf(buf.Info[i]); a != None {
					t.Errorf("transparent U+%04X must have action none, has %s", cp, a)
				}
				continue
			}
			withT = append(withT, ActionOf(buf.Info[i]))
			opaque = append(opaque, cp)
		}
		buf = makeBuffer(t, opaque...)
		ApplyJoining(buf)
		stripped = Actions(buf)
		if fmt.Sprint(withT) != fmt.Sprint(stripped) {
			t.Errorf("%U: actions %v differ from %v without transparent marks", word, withT, stripped)
		}
	}
}

func TestJoiningIsRepeatable(t *testing.T) {
	buf := makeBuffer(t, 0x0628, 0x0644, 0x064E, 0x0627, ' ', 0x0710, 0x0710)
	ApplyJoining(buf)
	first := fmt.Sprint(Actions(buf))
	buf.ResetMasks(0)
	ApplyJoining(buf)
	if second := fmt.Sprint(Actions(buf)); first != second {
		t.Errorf("second run changed actions: %s != %s", first, second)
	}
}

func TestMongolianVariationSelectors(t *testing.T) {
	buf := makeBuffer(t, 0x1820, 0x180B, 0x1820, 0x180E)
	ApplyJoining(buf)
	mongolianVariationSelectors(buf)
	if ActionOf(buf.Info[1]) != ActionOf(buf.Info[0]) {
		t.Errorf("FVS1 must take the action of its base: %v", Actions(buf))
	}
	if ActionOf(buf.Info[0]) == None {
		t.Errorf("Mongolian letter must carry a form action")
	}
	if ActionOf(buf.Info[3]) == ActionOf(buf.Info[2]) {
		t.Errorf("U+180E is not a free variation selector: %v", Actions(buf))
	}
}
