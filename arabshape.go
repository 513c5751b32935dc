package arabshape

import (
	"os"
	"slices"

	"github.com/npillmayer/arabshape/otquery"
	"github.com/npillmayer/arabshape/otshape"
	"github.com/npillmayer/arabshape/otshape/otarabic"
	"github.com/npillmayer/arabshape/otshape/otcore"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// LoadFont loads an OpenType font (TTF or OTF) from a file.
func LoadFont(fontfile string) (*otquery.SFNTFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseFont(bytez)
}

// ParseFont loads an OpenType font (TTF or OTF) from memory.
func ParseFont(fbytes []byte) (*otquery.SFNTFont, error) {
	f, err := otquery.ParseFont(fbytes)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}

var (
	joiners = otshape.NewShaper(otarabic.New())
	shaper  = otshape.NewShaper(otarabic.New(), otcore.New())
)

// Selection returns the segment properties for horizontal right-to-left
// text in a script.
func Selection(script language.Script) otshape.SelectionContext {
	return otshape.SelectionContext{
		Direction: bidi.RightToLeft,
		Script:    script,
	}
}

func newBuffer(text []rune) (*otshape.Buffer, error) {
	buf := otshape.NewBuffer(otshape.BufferOptions{})
	if err := buf.AddRunes(text, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

// AnalyzeJoining returns the joining action of every code-point of text.
// Scripts without Arabic-style joining are rejected with an error wrapping
// otshape.ErrNoMatchingShaper.
func AnalyzeJoining(text string, script language.Script) ([]otarabic.Action, error) {
	buf, err := newBuffer([]rune(text))
	if err != nil {
		return nil, err
	}
	plan, err := joiners.NewPlan(Selection(script), otshape.AllFeatures)
	if err != nil {
		return nil, err
	}
	defer plan.Destroy()
	plan.SetupMasks(buf)
	return otarabic.Actions(buf), nil
}

// ReorderMarks sorts every sequence of combining marks in text by modified
// combining class, as normalization does, and then applies the Arabic mark
// reordering of UTR #53. The resulting buffer carries the new classes.
func ReorderMarks(text []rune, script language.Script) (*otshape.Buffer, error) {
	buf, err := newBuffer(text)
	if err != nil {
		return nil, err
	}
	plan, err := joiners.NewPlan(Selection(script), otshape.AllFeatures)
	if err != nil {
		return nil, err
	}
	defer plan.Destroy()
	info := buf.Info
	for start := 0; start < len(info); {
		if info[start].ModifiedCCC == 0 {
			start++
			continue
		}
		end := start + 1
		for end < len(info) && info[end].ModifiedCCC != 0 {
			end++
		}
		slices.SortStableFunc(info[start:end], func(a, b otshape.GlyphInfo) int {
			return int(a.ModifiedCCC) - int(b.ModifiedCCC)
		})
		tracer().Debugf("reordering marks [%d,%d)", start, end)
		plan.ReorderMarks(buf, start, end)
		start = end
	}
	return buf, nil
}

// ShapeText shapes text as one right-to-left run in a script. Scripts
// without Arabic-style joining are shaped by the core engine. Code-points
// are mapped to glyphs through the font's cmap, features the font lacks
// are left out of the plan, and lookups applies the font's GSUB features.
// A nil lookups runs the plan without substitutions.
func ShapeText(font *otquery.SFNTFont, text string, script language.Script, lookups otshape.LookupApplier) (*otshape.Buffer, error) {
	buf, err := newBuffer([]rune(text))
	if err != nil {
		return nil, err
	}
	for i := range buf.Info {
		buf.Info[i].Glyph = font.GlyphIndex(buf.Info[i].Codepoint)
	}
	plan, err := shaper.NewPlan(Selection(script), font)
	if err != nil {
		return nil, err
	}
	defer plan.Destroy()
	tracer().Debugf("shaping %d code-points with plan %s", buf.Len(), plan.Map())
	if err := plan.Shape(font, buf, lookups); err != nil {
		return nil, err
	}
	return buf, nil
}
