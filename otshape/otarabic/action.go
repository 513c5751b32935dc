package otarabic

import "github.com/npillmayer/arabshape/otshape"

// Action is the shaping action the engine assigns to a glyph. It is stored
// in the glyph's ComplexAux byte. The first seven values select one of the
// positional form features; the stretching values are assigned only after
// the 'stch' feature has been applied.
type Action uint8

const (
	Isol Action = iota
	Fina
	Fin2
	Fin3
	Medi
	Med2
	Init
	None

	StchFixed
	StchRepeating
)

var actionNames = [...]string{
	"isol", "fina", "fin2", "fin3", "medi", "med2", "init", "none",
	"stch-fixed", "stch-repeating",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "?"
}

// IsStretch is true for the two stretching actions.
func (a Action) IsStretch() bool {
	return a == StchFixed || a == StchRepeating
}

// ActionOf returns the action stored for a glyph.
func ActionOf(info otshape.GlyphInfo) Action {
	return Action(info.ComplexAux)
}

// Actions returns the actions of all glyphs in buf.
func Actions(buf *otshape.Buffer) []Action {
	actions := make([]Action, buf.Len())
	for i, info := range buf.Info {
		actions[i] = ActionOf(info)
	}
	return actions
}

func setAction(info *otshape.GlyphInfo, a Action) {
	info.ComplexAux = uint8(a)
}
