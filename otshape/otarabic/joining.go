package otarabic

import (
	"github.com/npillmayer/arabshape/otshape"
	"github.com/npillmayer/arabshape/ucd"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// Classify returns the joining type of a code-point. Code-points without an
// entry in the Unicode joining data are transparent if they are marks or
// format characters, and non-joining otherwise.
func Classify(r rune, gc ucd.GeneralCategory) ucd.JoiningType {
	jt := ucd.LookupJoiningType(r)
	if jt != ucd.JoiningX {
		return jt
	}
	const transparent = 1<<ucd.NonSpacingMark | 1<<ucd.EnclosingMark | 1<<ucd.Format
	if gc.Flag()&transparent != 0 {
		return ucd.JoiningT
	}
	return ucd.JoiningU
}

func classifyRune(r rune) ucd.JoiningType {
	return Classify(r, ucd.LookupGeneralCategory(r))
}

type joiningState uint8

type stateEntry struct {
	prevAction Action
	currAction Action
	nextState  joiningState
}

// The joining state machine. Columns are the joining types U, L, R, D,
// Alaph and DalathRish, in the order of ucd.JoiningType.
var stateTable = [...][ucd.NumJoiningColumns]stateEntry{
	/*   U                 L                 R                 D                 Alaph             DalathRish */

	// State 0: prev was U, not willing to join.
	{{None, None, 0}, {None, Isol, 2}, {None, Isol, 1}, {None, Isol, 2}, {None, Isol, 1}, {None, Isol, 6}},

	// State 1: prev was R or Isol/Alaph, not willing to join.
	{{None, None, 0}, {None, Isol, 2}, {None, Isol, 1}, {None, Isol, 2}, {None, Fin2, 5}, {None, Isol, 6}},

	// State 2: prev was D/L in Isol form, willing to join.
	{{None, None, 0}, {None, Isol, 2}, {Init, Fina, 1}, {Init, Fina, 3}, {Init, Fina, 4}, {Init, Fina, 6}},

	// State 3: prev was D in Fina form, willing to join.
	{{None, None, 0}, {None, Isol, 2}, {Medi, Fina, 1}, {Medi, Fina, 3}, {Medi, Fina, 4}, {Medi, Fina, 6}},

	// State 4: prev was Fina Alaph, not willing to join.
	{{None, None, 0}, {None, Isol, 2}, {Med2, Isol, 1}, {Med2, Isol, 2}, {Med2, Fin2, 5}, {Med2, Isol, 6}},

	// State 5: prev was Fin2/Fin3 Alaph, not willing to join.
	{{None, None, 0}, {None, Isol, 2}, {Isol, Isol, 1}, {Isol, Isol, 2}, {Isol, Fin2, 5}, {Isol, Isol, 6}},

	// State 6: prev was Dalath/Rish, not willing to join.
	{{None, None, 0}, {None, Isol, 2}, {None, Isol, 1}, {None, Isol, 2}, {None, Fin3, 5}, {None, Isol, 6}},
}

// ApplyJoining runs the joining state machine over buf and stores the
// resulting action of every glyph. Transparent glyphs receive None and do
// not influence their neighbours. The buffer's pre-context determines the
// initial state, its post-context may change the action of the last
// joining glyph.
func ApplyJoining(buf *otshape.Buffer) {
	applyJoining(buf)
}

// applyJoining returns the final state of the machine.
func applyJoining(buf *otshape.Buffer) joiningState {
	info := buf.Info
	prev, state := -1, joiningState(0)

	for _, r := range buf.PreContext() {
		jt := classifyRune(r)
		if jt == ucd.JoiningT {
			continue
		}
		state = stateTable[state][jt].nextState
		break
	}

	for i := range info {
		jt := Classify(info[i].Codepoint, info[i].GeneralCategory)
		if jt == ucd.JoiningT {
			setAction(&info[i], None)
			continue
		}
		entry := &stateTable[state][jt]
		if entry.prevAction != None && prev != -1 {
			setAction(&info[prev], entry.prevAction)
			buf.UnsafeToBreak(prev, i+1)
		}
		setAction(&info[i], entry.currAction)
		prev = i
		state = entry.nextState
	}

	for _, r := range buf.PostContext() {
		jt := classifyRune(r)
		if jt == ucd.JoiningT {
			continue
		}
		entry := &stateTable[state][jt]
		if entry.prevAction != None && prev != -1 {
			setAction(&info[prev], entry.prevAction)
			buf.UnsafeToBreak(prev, len(info))
		}
		break
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		for _, gi := range info {
			tracer().Debugf("U+%04X %-30s %s", gi.Codepoint, runenames.Name(gi.Codepoint), ActionOf(gi))
		}
	}
	return state
}

// mongolianVariationSelectors lets the free variation selectors FVS1 to FVS3
// take the action of the preceding glyph.
func mongolianVariationSelectors(buf *otshape.Buffer) {
	info := buf.Info
	for i := 1; i < len(info); i++ {
		if cp := info[i].Codepoint; 0x180B <= cp && cp <= 0x180D {
			info[i].ComplexAux = info[i-1].ComplexAux
		}
	}
}
